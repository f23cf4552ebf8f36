// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package registry

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
	withName   string
	withHidden bool
}

func getDefaultOptions() options {
	return options{}
}

// WithName registers a command under name instead of the name derived from
// its handler's type.
func WithName(name string) Option {
	return func(o *options) {
		o.withName = name
	}
}

// WithHidden registers a command that can be run but is not listed in
// usage or completion.
func WithHidden() Option {
	return func(o *options) {
		o.withHidden = true
	}
}
