// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"io"
	"os"

	"github.com/alburnum/maas/internal/profiles"
	"github.com/hashicorp/go-hclog"
)

// getOpts - iterate the inbound Options and return a struct.
func getOpts(opt ...Option) options {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			o(&opts)
		}
	}
	return opts
}

// Option - how options are passed as arguments.
type Option func(*options)

type options struct {
	withLogger       hclog.Logger
	withOutputMode   OutputMode
	withStdin        io.Reader
	withShutdownCh   chan struct{}
	withProfilesPath string
	withStoreOptions []profiles.Option
	withSessions     SessionProvider
}

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
		withStdin:  os.Stdin,
	}
}

// WithLogger provides the logger commands write diagnostics to.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.withLogger = l
		}
	}
}

// WithOutputMode sets how commands render tables.
func WithOutputMode(m OutputMode) Option {
	return func(o *options) {
		o.withOutputMode = m
	}
}

// WithStdin sets the reader used when credentials are read from standard
// input.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.withStdin = r
		}
	}
}

// WithShutdownCh provides the channel that is closed on interrupt. A
// channel listening for SIGINT and SIGTERM is created when none is given.
func WithShutdownCh(ch chan struct{}) Option {
	return func(o *options) {
		o.withShutdownCh = ch
	}
}

// WithProfilesPath sets the location of the profile store.
func WithProfilesPath(path string) Option {
	return func(o *options) {
		o.withProfilesPath = path
	}
}

// WithStoreOptions passes options to every profile store a command opens.
func WithStoreOptions(opt ...profiles.Option) Option {
	return func(o *options) {
		o.withStoreOptions = append(o.withStoreOptions, opt...)
	}
}

// WithSessions sets the provider commands connect to servers through.
func WithSessions(p SessionProvider) Option {
	return func(o *options) {
		o.withSessions = p
	}
}
