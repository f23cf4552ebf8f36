// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package profiles

import (
	"context"
	"fmt"

	"github.com/alburnum/maas/internal/errors"
	"github.com/cenkalti/backoff/v4"
)

// storeLock is an exclusive, process-wide lock guarding one store path.
type storeLock interface {
	// tryLock returns errWouldBlock when another holder owns the lock.
	tryLock() error
	release() error
}

// lockPath returns the path of the lock file guarding the store at path.
func lockPath(path string) string {
	return path + ".lock"
}

// acquireLock blocks until the lock for the store at path is held or ctx is
// done.
func acquireLock(ctx context.Context, path string, opts options) (storeLock, error) {
	const op = "profiles.acquireLock"
	l, err := openLock(lockPath(path))
	if err != nil {
		return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg(fmt.Sprintf("unable to open lock file for %q", path)))
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = opts.withLockMinInterval
	eb.MaxInterval = opts.withLockMaxInterval
	eb.MaxElapsedTime = 0
	waiting := false
	err = backoff.Retry(func() error {
		err := l.tryLock()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, errWouldBlock):
			if !waiting {
				opts.withLogger.Debug("waiting for profile store lock", "path", path)
				waiting = true
			}
			return err
		default:
			return backoff.Permanent(err)
		}
	}, backoff.WithContext(eb, ctx))
	if err != nil {
		_ = l.release()
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx, ctx.Err(), op, errors.WithCode(errors.Interrupted), errors.WithMsg("gave up waiting for profile store lock"))
		}
		return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.StoreLocked))
	}
	opts.withLogger.Debug("acquired profile store lock", "path", path)
	return l, nil
}
