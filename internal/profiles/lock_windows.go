// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

//go:build windows
// +build windows

package profiles

import (
	stderrors "errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sys/windows"
)

var errWouldBlock = stderrors.New("profile store lock is held by another process")

// fileLock holds a byte-range lock on the lock file. The OS drops the lock
// when the owning process exits, so a crashed holder never wedges the store.
type fileLock struct {
	f *os.File
}

func openLock(path string) (storeLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, err
	}
	return &fileLock{f: f}, nil
}

func (l *fileLock) tryLock() error {
	err := windows.LockFileEx(windows.Handle(l.f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0, 1, 0, new(windows.Overlapped))
	if stderrors.Is(err, windows.ERROR_LOCK_VIOLATION) {
		return errWouldBlock
	}
	return err
}

func (l *fileLock) release() error {
	var result *multierror.Error
	if err := windows.UnlockFileEx(windows.Handle(l.f.Fd()), 0, 1, 0, new(windows.Overlapped)); err != nil && !stderrors.Is(err, windows.ERROR_NOT_LOCKED) {
		result = multierror.Append(result, err)
	}
	if err := l.f.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
