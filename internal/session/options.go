// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package session

import (
	"github.com/alburnum/maas/internal/profiles"
	"github.com/hashicorp/go-hclog"
)

type options struct {
	withLogger     hclog.Logger
	withMaxRetries *int
	withStoreOpts  []profiles.Option
}

// Option - how options are passed as args
type Option func(*options)

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
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

// WithLogger provides an optional logger for requests and store access.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.withLogger = l
		}
	}
}

// WithMaxRetries overrides the retry count read from the environment.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		o.withMaxRetries = &n
	}
}

// WithStoreOptions passes options through to the profile store opened by a
// Provider.
func WithStoreOptions(opt ...profiles.Option) Option {
	return func(o *options) {
		o.withStoreOpts = append(o.withStoreOpts, opt...)
	}
}
