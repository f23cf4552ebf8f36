// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

// GetOpts - iterate the inbound Options and return a struct.
func GetOpts(opt ...Option) Options {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			o(&opts)
		}
	}
	return opts
}

// Option - how Options are passed as arguments.
type Option func(*Options)

// Options = how options are represented
type Options struct {
	withCode       Code
	withErrWrapped error
	withErrMsg     string
	withOp         Op
}

func getDefaultOptions() Options {
	return Options{}
}

// WithWrap allows an optional error to wrap.
func WithWrap(e error) Option {
	return func(o *Options) {
		o.withErrWrapped = e
	}
}

// WithMsg allows an optional message.
func WithMsg(msg string) Option {
	return func(o *Options) {
		if msg == "" {
			return
		}
		o.withErrMsg = msg
	}
}

// WithOp allows an optional operation.
func WithOp(op Op) Option {
	return func(o *Options) {
		o.withOp = op
	}
}

// WithCode allows an optional error code.
func WithCode(code Code) Option {
	return func(o *Options) {
		o.withCode = code
	}
}
