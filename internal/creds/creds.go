// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package creds parses and obtains the three-part API keys used to sign
// requests to a MAAS server.
package creds

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alburnum/maas/internal/errors"
	"github.com/mitchellh/cli"
)

// StdinMarker is the credentials argument that requests reading the API key
// from standard input.
const StdinMarker = "-"

// Credentials is an API key: an OAuth consumer key, token key and token
// secret.
type Credentials struct {
	ConsumerKey string
	TokenKey    string
	TokenSecret string
}

// Parse converts "consumer-key:token-key:token-secret" into Credentials.
// Exactly three non-empty components are required.
func Parse(ctx context.Context, s string) (*Credentials, error) {
	const op = "creds.Parse"
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return nil, errors.New(ctx, errors.InvalidCredentials, op,
			fmt.Sprintf("malformed API key: expected 3 parts separated by ':', got %d", len(parts)))
	}
	for _, p := range parts {
		if p == "" {
			return nil, errors.New(ctx, errors.InvalidCredentials, op, "malformed API key: empty component")
		}
	}
	return &Credentials{
		ConsumerKey: parts[0],
		TokenKey:    parts[1],
		TokenSecret: parts[2],
	}, nil
}

// Validate reports whether all three components are present.
func (c *Credentials) Validate(ctx context.Context) error {
	const op = "creds.(Credentials).Validate"
	if c == nil {
		return nil
	}
	if c.ConsumerKey == "" || c.TokenKey == "" || c.TokenSecret == "" {
		return errors.New(ctx, errors.InvalidCredentials, op, "API key must have 3 non-empty components")
	}
	return nil
}

// String returns the colon separated form accepted by Parse.
func (c *Credentials) String() string {
	if c == nil {
		return ""
	}
	return strings.Join([]string{c.ConsumerKey, c.TokenKey, c.TokenSecret}, ":")
}

// MarshalJSON stores credentials as a three element array.
func (c Credentials) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{c.ConsumerKey, c.TokenKey, c.TokenSecret})
}

// UnmarshalJSON reads the three element array written by MarshalJSON.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("credentials: expected 3 components, got %d", len(parts))
	}
	c.ConsumerKey, c.TokenKey, c.TokenSecret = parts[0], parts[1], parts[2]
	return nil
}

// Obtain returns the credentials named by arg. A nil arg prompts on ui
// without echo. StdinMarker reads a single line from in. An empty string,
// whether given, typed or read, means anonymous access and nil is returned.
func Obtain(ctx context.Context, ui cli.Ui, in io.Reader, arg *string) (*Credentials, error) {
	const op = "creds.Obtain"
	var raw string
	switch {
	case arg == nil:
		if ui == nil {
			return nil, errors.New(ctx, errors.Internal, op, "no ui to prompt for API key")
		}
		answer, err := ui.AskSecret("API key (leave empty for anonymous access):")
		if err != nil {
			return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg("unable to read API key"))
		}
		raw = answer
	case *arg == StdinMarker:
		if in == nil {
			return nil, errors.New(ctx, errors.Internal, op, "no input to read API key from")
		}
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg("unable to read API key from stdin"))
		}
		raw = line
	default:
		raw = *arg
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	c, err := Parse(ctx, raw)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	return c, nil
}
