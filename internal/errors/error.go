// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Op represents an operation (package.function).
// For example iam.CreateRole
type Op string

// Err provides the ability to specify a Msg, Op, Code and Wrapped error.
// Errs must have a Code and all other fields are optional. We've chosen Err
// over Error for the identifier to support the easy embedding of Errs.  Errs
// can be embedded without a conflict between the embedded Err and Err.Error().
type Err struct {
	// Code is the error's code, which can be used to get the error's
	// errorCodeInfo, which contains the error's Kind and Message
	Code Code

	// Msg for the error
	Msg string

	// Op represents the operation raising/propagating an error and is optional.
	Op Op

	// Wrapped is the error which this Err wraps and will be nil if there's no
	// error to wrap.
	Wrapped error
}

// E creates a new Err with provided code and supports the options of:
//
// * WithOp() - allows you to specify an optional Op (operation).
//
// * WithMsg() - allows you to specify an optional error msg, if the default
// msg for the error Code is not sufficient.
//
// * WithWrap() - allows you to specify an error to wrap.  If the wrapped error
// is an *Err and no Code was given, the wrapped Err's Code is used.
func E(ctx context.Context, opt ...Option) error {
	const op = "errors.E"
	if ctx == nil {
		return fmt.Errorf("%s: missing context", op)
	}
	opts := GetOpts(opt...)
	var code Code
	switch {
	case opts.withCode != Unknown:
		code = opts.withCode
	case opts.withErrWrapped != nil:
		var wrapped *Err
		if As(opts.withErrWrapped, &wrapped) {
			code = wrapped.Code
		}
	}
	return &Err{
		Code:    code,
		Op:      opts.withOp,
		Wrapped: opts.withErrWrapped,
		Msg:     opts.withErrMsg,
	}
}

// New creates a new Err with the given code, op and msg.
func New(ctx context.Context, c Code, op Op, msg string, opt ...Option) error {
	opt = append(opt, WithCode(c), WithOp(op), WithMsg(msg))
	return E(ctx, opt...)
}

// Wrap creates a new Err from the provided err and op, preserving the code
// from the originating error.
func Wrap(ctx context.Context, e error, op Op, opt ...Option) error {
	if e == nil {
		return nil
	}
	opt = append(opt, WithWrap(e), WithOp(op))
	return E(ctx, opt...)
}

// Convert will convert the error to an Err and attempt to add a helpful
// error msg as well. Context cancellation becomes an Interrupted Err.
func Convert(e error) *Err {
	if e == nil {
		return nil
	}
	var alreadyConverted *Err
	if As(e, &alreadyConverted) {
		return alreadyConverted
	}
	if Is(e, context.Canceled) {
		return &Err{Code: Interrupted, Msg: "operation interrupted", Wrapped: e}
	}
	return &Err{Code: Unknown, Wrapped: e}
}

// Info about the Err
func (e *Err) Info() Info {
	if e == nil {
		return errorCodeInfo[Unknown]
	}
	if info, ok := errorCodeInfo[e.Code]; ok {
		return info
	}
	return errorCodeInfo[Unknown]
}

// Error satisfies the error interface and returns a string representation of
// the Err
func (e *Err) Error() string {
	if e == nil {
		return ""
	}
	var s strings.Builder
	if e.Op != "" {
		join(&s, ": ", string(e.Op))
	}
	if e.Msg != "" {
		join(&s, ": ", e.Msg)
	}

	var skipInfo bool
	var wrapped *Err
	if As(e.Wrapped, &wrapped) {
		// if wrapped error code is the same as this error, don't print redundant info
		skipInfo = wrapped.Code == e.Code
		if w := wrapped.Error(); w != "" {
			join(&s, ": ", w)
		}
	} else if e.Wrapped != nil {
		join(&s, ": ", e.Wrapped.Error())
	}

	if !skipInfo && e.Code != Unknown {
		info := e.Info()
		join(&s, ": ", fmt.Sprintf("%s, %s: error #%d", info.Kind.String(), info.Message, e.Code))
	}
	return s.String()
}

// Message returns the Err's chain of messages without ops, kinds or codes,
// suitable for a single line shown to a user. When no layer has a message,
// the innermost code's default message is used.
func Message(e error) string {
	if e == nil {
		return ""
	}
	var msgs []string
	var lastCode Code
	for cur := e; cur != nil; {
		err, ok := cur.(*Err)
		if !ok {
			msgs = append(msgs, cur.Error())
			break
		}
		if err.Msg != "" {
			msgs = append(msgs, err.Msg)
		}
		if err.Code != Unknown {
			lastCode = err.Code
		}
		cur = err.Wrapped
	}
	if len(msgs) == 0 {
		return lastCode.Info().Message
	}
	line := strings.Join(msgs, ": ")
	return strings.Join(strings.Fields(line), " ")
}

// Detail returns one line per layer of the Err chain, including the op, kind
// and code of every Err.
func Detail(e error) string {
	if e == nil {
		return ""
	}
	var s strings.Builder
	for depth, cur := 0, e; cur != nil; depth++ {
		indent := strings.Repeat("  ", depth)
		err, ok := cur.(*Err)
		if !ok {
			fmt.Fprintf(&s, "%s%s (%T)\n", indent, cur.Error(), cur)
			break
		}
		info := err.Info()
		fmt.Fprintf(&s, "%sop=%q msg=%q kind=%q code=%d\n", indent, err.Op, err.Msg, info.Kind, err.Code)
		cur = err.Wrapped
	}
	return s.String()
}

// Unwrap implements the errors.Unwrap interface and allows callers to use the
// errors.Is() and errors.As() functions effectively for any wrapped errors.
func (e *Err) Unwrap() error {
	return e.Wrapped
}

func join(str *strings.Builder, delim string, s string) {
	if str.Len() == 0 {
		_, _ = str.WriteString(s)
		return
	}
	_, _ = str.WriteString(delim + s)
}

// Is the equivalent of the std errors.Is, but allows clients to only import
// this package for the capability.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the equivalent of the std errors.As, and allows clients to only import
// this package for the capability.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is the equivalent of the std errors.Unwrap, and allows clients to
// only import this package for the capability.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// SingleLineFormat formats a list of errors on one line. Its signature
// matches multierror.ErrorFormatFunc.
func SingleLineFormat(es []error) string {
	switch len(es) {
	case 0:
		return ""
	case 1:
		return es[0].Error()
	}
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%d errors occurred: %s", len(es), strings.Join(msgs, "; "))
}
