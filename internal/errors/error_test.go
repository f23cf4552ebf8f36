// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/alburnum/maas/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ErrorE(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	errRecordNotFound := errors.E(ctx, errors.WithCode(errors.RecordNotFound))
	tests := []struct {
		name string
		opt  []errors.Option
		want error
	}{
		{
			name: "all-options",
			opt: []errors.Option{
				errors.WithCode(errors.InvalidParameter),
				errors.WithOp("alice.Bob"),
				errors.WithWrap(errRecordNotFound),
				errors.WithMsg("test msg"),
			},
			want: &errors.Err{
				Op:      "alice.Bob",
				Wrapped: errRecordNotFound,
				Msg:     "test msg",
				Code:    errors.InvalidParameter,
			},
		},
		{
			name: "no-options",
			opt:  nil,
			want: &errors.Err{
				Code: errors.Unknown,
			},
		},
		{
			name: "withCode",
			opt: []errors.Option{
				errors.WithCode(errors.StoreCorrupt),
			},
			want: &errors.Err{
				Code: errors.StoreCorrupt,
			},
		},
		{
			name: "uses-wrapped-code",
			opt: []errors.Option{
				errors.WithWrap(errRecordNotFound),
			},
			want: &errors.Err{
				Code:    errors.RecordNotFound,
				Wrapped: errRecordNotFound,
			},
		},
		{
			name: "conflicting-withCode-withWrap",
			opt: []errors.Option{
				errors.WithCode(errors.RemoteCall),
				errors.WithWrap(errRecordNotFound),
			},
			want: &errors.Err{
				Code:    errors.RemoteCall,
				Wrapped: errRecordNotFound,
			},
		},
		{
			name: "msg-with-verbs",
			opt: []errors.Option{
				errors.WithMsg("profile %q not found"),
			},
			want: &errors.Err{
				Msg: "profile %q not found",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)
			err := errors.E(ctx, tt.opt...)
			require.Error(t, err)
			assert.Equal(tt.want, err)
		})
	}
}

func Test_ErrorWrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert, require := assert.New(t), require.New(t)

	assert.Nil(errors.Wrap(ctx, nil, "profiles.Open"))

	inner := errors.New(ctx, errors.StoreCorrupt, "profiles.load", "not a profile database")
	outer := errors.Wrap(ctx, inner, "profiles.Open")
	require.Error(outer)
	var e *errors.Err
	require.True(errors.As(outer, &e))
	assert.Equal(errors.StoreCorrupt, e.Code)
	assert.Equal(errors.Op("profiles.Open"), e.Op)
	assert.True(errors.Is(outer, inner))
}

func TestError_Info(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *errors.Err
		want errors.Info
	}{
		{
			name: "nil",
			err:  nil,
			want: errors.Unknown.Info(),
		},
		{
			name: "NotFound",
			err:  &errors.Err{Code: errors.RecordNotFound},
			want: errors.RecordNotFound.Info(),
		},
		{
			name: "unregistered-code",
			err:  &errors.Err{Code: errors.Code(42)},
			want: errors.Unknown.Info(),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Info())
		})
	}
}

func TestError_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "msg-and-code",
			err:  errors.New(ctx, errors.InvalidParameter, "", "missing name"),
			want: "missing name: parameter violation, invalid parameter: error #100",
		},
		{
			name: "op-msg-and-code",
			err:  errors.New(ctx, errors.RecordNotFound, "profiles.(Store).Get", "no profile named \"dev\""),
			want: "profiles.(Store).Get: no profile named \"dev\": search issue, record not found: error #1100",
		},
		{
			name: "wrapped-same-code",
			err: errors.Wrap(ctx,
				errors.New(ctx, errors.StoreCorrupt, "profiles.load", "bad header"),
				"profiles.Open"),
			want: "profiles.Open: profiles.load: bad header: integrity violation, profile store is corrupt: error #1000",
		},
		{
			name: "wrapped-std-error",
			err:  errors.Wrap(ctx, fmt.Errorf("dial tcp: refused"), "api.Do", errors.WithCode(errors.RemoteCall)),
			want: "api.Do: dial tcp: refused: external system issue, remote call failed: error #2000",
		},
		{
			name: "unknown",
			err:  &errors.Err{},
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "single",
			err:  errors.New(ctx, errors.RecordNotFound, "profiles.Get", "no profile named \"dev\""),
			want: "no profile named \"dev\"",
		},
		{
			name: "chain-skips-ops",
			err: errors.Wrap(ctx,
				errors.New(ctx, errors.RemoteCall, "api.Do", "GET describe/ failed", errors.WithWrap(stderrors.New("connection\nrefused"))),
				"login.Execute", errors.WithMsg("unable to reach server")),
			want: "unable to reach server: GET describe/ failed: connection refused",
		},
		{
			name: "code-default",
			err:  errors.E(ctx, errors.WithCode(errors.StoreClosed)),
			want: "profile store is closed",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Message(tt.err))
		})
	}
}

func TestDetail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.Wrap(ctx,
		errors.New(ctx, errors.StoreCorrupt, "profiles.load", "bad header"),
		"profiles.Open")
	got := errors.Detail(err)
	assert.Equal(t,
		"op=\"profiles.Open\" msg=\"\" kind=\"integrity violation\" code=1000\n"+
			"  op=\"profiles.load\" msg=\"bad header\" kind=\"integrity violation\" code=1000\n",
		got)
}

func TestConvert(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.Nil(errors.Convert(nil))

	e := errors.Convert(context.Canceled)
	assert.Equal(errors.Interrupted, e.Code)
	assert.True(errors.IsInterruptedError(e))

	plain := stderrors.New("boom")
	e = errors.Convert(plain)
	assert.Equal(errors.Unknown, e.Code)
	assert.Equal(plain, e.Wrapped)
}

func TestSingleLineFormat(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.Equal("", errors.SingleLineFormat(nil))
	assert.Equal("one", errors.SingleLineFormat([]error{stderrors.New("one")}))
	assert.Equal("2 errors occurred: one; two",
		errors.SingleLineFormat([]error{stderrors.New("one"), stderrors.New("two")}))
}
