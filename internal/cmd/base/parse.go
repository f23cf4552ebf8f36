// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import "strings"

// Options is the parsed, validated input of one invocation: the resolved
// command path, the positional and flag values and the global debug flag.
// It is built by the dispatcher after parsing succeeded and is read-only.
type Options struct {
	path    []string
	debug   bool
	flags   *FlagSets
	handler Handler
}

// NewOptions bundles the parse result for handler. flags must already have
// parsed the command's arguments.
func NewOptions(path []string, debug bool, flags *FlagSets, handler Handler) *Options {
	if flags == nil {
		flags = NewFlagSets()
	}
	return &Options{
		path:    append([]string(nil), path...),
		debug:   debug,
		flags:   flags,
		handler: handler,
	}
}

// Path returns the command path, for example ["login"].
func (o *Options) Path() []string {
	return append([]string(nil), o.path...)
}

// Command returns the command path joined with spaces.
func (o *Options) Command() string {
	return strings.Join(o.path, " ")
}

// Debug reports whether the global --debug flag was given.
func (o *Options) Debug() bool {
	return o.debug
}

// Handler returns the handler the options were parsed for.
func (o *Options) Handler() Handler {
	return o.handler
}

// Arg returns the value of the named positional argument, or "" when it is
// optional and was not given.
func (o *Options) Arg(name string) string {
	for _, p := range o.flags.positionals {
		if p.Name == name {
			return *p.Target
		}
	}
	return ""
}

// HasArg reports whether the named positional argument was given.
func (o *Options) HasArg(name string) bool {
	for _, p := range o.flags.positionals {
		if p.Name == name {
			return p.set
		}
	}
	return false
}

// Flag returns the string form of the named flag's value, or "" for an
// unknown flag.
func (o *Options) Flag(name string) string {
	if fl := o.flags.Lookup(name); fl != nil {
		return fl.Value.String()
	}
	return ""
}

// Changed reports whether the named flag was set on the command line.
func (o *Options) Changed(name string) bool {
	return o.flags.Changed(name)
}
