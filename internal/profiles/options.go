// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package profiles

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

type options struct {
	withLogger          hclog.Logger
	withLockMinInterval time.Duration
	withLockMaxInterval time.Duration
}

// Option - how options are passed as args
type Option func(*options)

func getDefaultOptions() options {
	return options{
		withLogger:          hclog.NewNullLogger(),
		withLockMinInterval: 10 * time.Millisecond,
		withLockMaxInterval: 500 * time.Millisecond,
	}
}

func getOpts(opt ...Option) options {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			o(&opts)
		}
	}
	return opts
}

// WithLogger provides an optional logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.withLogger = l
		}
	}
}

// WithLockInterval sets the bounds of the backoff used while waiting for
// another process to release the store lock.
func WithLockInterval(min, max time.Duration) Option {
	return func(o *options) {
		if min > 0 {
			o.withLockMinInterval = min
		}
		if max > 0 {
			o.withLockMaxInterval = max
		}
		if o.withLockMaxInterval < o.withLockMinInterval {
			o.withLockMaxInterval = o.withLockMinInterval
		}
	}
}
