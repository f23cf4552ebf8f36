// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

//go:build !windows
// +build !windows

package profiles

import (
	"github.com/hashicorp/go-multierror"
	"github.com/sevlyar/go-daemon"
)

var errWouldBlock = daemon.ErrWouldBlock

type flockLock struct {
	*daemon.LockFile
}

func openLock(path string) (storeLock, error) {
	l, err := daemon.OpenLockFile(path, 0o600)
	if err != nil {
		return nil, err
	}
	return &flockLock{LockFile: l}, nil
}

func (l *flockLock) tryLock() error {
	return l.Lock()
}

// release unlocks and closes the lock file. The file itself is left in place
// since removing it would let a waiting process lock an unlinked inode.
func (l *flockLock) release() error {
	var result *multierror.Error
	if err := l.Unlock(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := l.LockFile.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
