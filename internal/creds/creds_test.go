// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package creds_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/internal/errors"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tests := []struct {
		name    string
		in      string
		want    *creds.Credentials
		wantErr bool
	}{
		{
			name: "valid",
			in:   "ck:tk:ts",
			want: &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
		},
		{
			name: "surrounding-space",
			in:   "  ck:tk:ts\n",
			want: &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
		},
		{
			name:    "two-parts",
			in:      "ck:tk",
			wantErr: true,
		},
		{
			name:    "four-parts",
			in:      "a:b:c:d",
			wantErr: true,
		},
		{
			name:    "empty-component",
			in:      "ck::ts",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := creds.Parse(ctx, tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Match(errors.T(errors.InvalidCredentials), err))
				assert.True(t, errors.IsUsageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.TrimSpace(tt.in), got.String())
		})
	}
}

func TestCredentials_JSON(t *testing.T) {
	t.Parallel()
	c := &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `["ck","tk","ts"]`, string(b))

	var got creds.Credentials
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, *c, got)

	assert.Error(t, json.Unmarshal([]byte(`["ck","tk"]`), &got))
}

func TestObtain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tests := []struct {
		name       string
		arg        *string
		stdin      string
		uiInput    string
		want       *creds.Credentials
		wantErr    bool
		wantPrompt bool
	}{
		{
			name: "argument",
			arg:  strPtr("ck:tk:ts"),
			want: &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
		},
		{
			name:  "stdin",
			arg:   strPtr(creds.StdinMarker),
			stdin: "ck:tk:ts\nignored\n",
			want:  &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
		},
		{
			name:  "stdin-without-newline",
			arg:   strPtr(creds.StdinMarker),
			stdin: "ck:tk:ts",
			want:  &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
		},
		{
			name:  "stdin-empty-is-anonymous",
			arg:   strPtr(creds.StdinMarker),
			stdin: "",
			want:  nil,
		},
		{
			name:       "prompt",
			uiInput:    "ck:tk:ts\n",
			want:       &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"},
			wantPrompt: true,
		},
		{
			name:       "prompt-empty-is-anonymous",
			uiInput:    "\n",
			want:       nil,
			wantPrompt: true,
		},
		{
			name:    "explicit-empty-is-anonymous",
			arg:     strPtr(""),
			uiInput: "ck:tk:ts\n",
			want:    nil,
		},
		{
			name:    "malformed",
			arg:     strPtr("nope"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ui := cli.NewMockUi()
			ui.InputReader = strings.NewReader(tt.uiInput)
			got, err := creds.Obtain(ctx, ui, strings.NewReader(tt.stdin), tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUsageError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantPrompt {
				assert.Contains(t, ui.OutputWriter.String(), "API key")
				return
			}
			assert.Empty(t, ui.OutputWriter.String())
		})
	}
}

func strPtr(s string) *string {
	return &s
}
