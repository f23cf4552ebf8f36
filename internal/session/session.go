// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package session connects to a MAAS server, either from a URL and
// credentials or from a stored profile, and exposes the object model the
// commands list.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alburnum/maas/api"
	"github.com/alburnum/maas/api/files"
	"github.com/alburnum/maas/api/nodes"
	"github.com/alburnum/maas/api/tags"
	"github.com/alburnum/maas/api/users"
	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
)

// Session is an authenticated, or anonymous, connection to one server along
// with the server's capability description.
type Session struct {
	client      *api.Client
	description json.RawMessage
}

func newClient(ctx context.Context, url string, c *creds.Credentials, insecure bool, opts options) (*api.Client, error) {
	const op = "session.newClient"
	cfg := api.DefaultConfig()
	if cfg.Error != nil {
		return nil, errors.Wrap(ctx, cfg.Error, op, errors.WithCode(errors.InvalidParameter), errors.WithMsg("invalid client environment"))
	}
	cfg.Address = url
	cfg.Credentials = c
	cfg.Logger = opts.withLogger
	if insecure {
		cfg.TLSConfig.Insecure = true
		if err := cfg.ConfigureTLS(); err != nil {
			return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidParameter))
		}
	}
	if opts.withMaxRetries != nil {
		cfg.MaxRetries = *opts.withMaxRetries
	}
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidAddress))
	}
	return client, nil
}

// Establish connects to the server at url and fetches its capability
// description.
func Establish(ctx context.Context, url string, c *creds.Credentials, insecure bool, opt ...Option) (*Session, error) {
	const op = "session.Establish"
	opts := getOpts(opt...)
	client, err := newClient(ctx, url, c, insecure, opts)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	var description json.RawMessage
	if err := client.Get(ctx, "describe/", nil, &description); err != nil {
		return nil, remoteError(ctx, err, op, fmt.Sprintf("unable to describe the MAAS server at %s", client.Address()))
	}
	opts.withLogger.Debug("established session", "url", client.Address(), "anonymous", c == nil)
	return &Session{client: client, description: description}, nil
}

// FromProfile builds a session from a stored profile, reusing its cached
// description without contacting the server.
func FromProfile(ctx context.Context, p *profiles.Profile, opt ...Option) (*Session, error) {
	const op = "session.FromProfile"
	if p == nil {
		return nil, errors.New(ctx, errors.InvalidParameter, op, "missing profile")
	}
	opts := getOpts(opt...)
	client, err := newClient(ctx, p.Url, p.Credentials, false, opts)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	return &Session{client: client, description: p.Description}, nil
}

// Url returns the normalized API URL.
func (s *Session) Url() string {
	return s.client.Address()
}

// Credentials returns the API key the session signs requests with.
func (s *Session) Credentials() *creds.Credentials {
	return s.client.Credentials()
}

// Description returns the server's capability description.
func (s *Session) Description() json.RawMessage {
	return s.description
}

// Client returns the underlying API client.
func (s *Session) Client() *api.Client {
	return s.client
}

// ValidateCredentials asks the server who the session's credentials belong
// to. It returns false when the server rejects them. Servers without the
// whoami operation answer 404, in which case the credentials are assumed
// valid.
func (s *Session) ValidateCredentials(ctx context.Context) (bool, error) {
	const op = "session.(Session).ValidateCredentials"
	if s.client.Credentials() == nil {
		return true, nil
	}
	_, err := users.NewClient(s.client).WhoAmI(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrForbidden):
		return false, nil
	case errors.Is(err, api.ErrNotFound):
		return true, nil
	default:
		return false, remoteError(ctx, err, op, "unable to validate API key")
	}
}

// Nodes lists the server's nodes.
func (s *Session) Nodes(ctx context.Context) ([]*nodes.Node, error) {
	const op = "session.(Session).Nodes"
	items, err := nodes.NewClient(s.client).List(ctx)
	if err != nil {
		return nil, remoteError(ctx, err, op, "unable to list nodes")
	}
	return items, nil
}

// Tags lists the server's tags.
func (s *Session) Tags(ctx context.Context) ([]*tags.Tag, error) {
	const op = "session.(Session).Tags"
	items, err := tags.NewClient(s.client).List(ctx)
	if err != nil {
		return nil, remoteError(ctx, err, op, "unable to list tags")
	}
	return items, nil
}

// Files lists the files stored on the server.
func (s *Session) Files(ctx context.Context) ([]*files.File, error) {
	const op = "session.(Session).Files"
	items, err := files.NewClient(s.client).List(ctx)
	if err != nil {
		return nil, remoteError(ctx, err, op, "unable to list files")
	}
	return items, nil
}

// Users lists the server's user accounts.
func (s *Session) Users(ctx context.Context) ([]*users.User, error) {
	const op = "session.(Session).Users"
	items, err := users.NewClient(s.client).List(ctx)
	if err != nil {
		return nil, remoteError(ctx, err, op, "unable to list users")
	}
	return items, nil
}

// remoteError classifies a failure talking to the server.
func remoteError(ctx context.Context, err error, op errors.Op, msg string) error {
	code := errors.RemoteCall
	if apiErr := api.AsServerError(err); apiErr != nil {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = errors.Unauthorized
		}
	}
	if errors.Is(err, context.Canceled) {
		code = errors.Interrupted
	}
	return errors.Wrap(ctx, err, op, errors.WithCode(code), errors.WithMsg(msg))
}
