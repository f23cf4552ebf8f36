// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"context"
	"encoding/json"

	"github.com/alburnum/maas/api/files"
	"github.com/alburnum/maas/api/nodes"
	"github.com/alburnum/maas/api/tags"
	"github.com/alburnum/maas/api/users"
	"github.com/alburnum/maas/internal/creds"
)

// Handler is a command that can be registered in the command tree.
type Handler interface {
	// Doc returns the command's help: a one paragraph summary, then an
	// optional body separated by a blank line.
	Doc() string

	// Execute runs the command. Failures are returned as errors and never
	// printed by the handler.
	Execute(ctx context.Context, opts *Options) error
}

// FlagDeclarer is implemented by handlers that take positional arguments or
// flags. Flags is called once, when the handler is registered.
type FlagDeclarer interface {
	Flags(set *FlagSets)
}

// Session is a connection to one server.
type Session interface {
	Url() string
	Credentials() *creds.Credentials
	Description() json.RawMessage
	ValidateCredentials(ctx context.Context) (bool, error)
	Nodes(ctx context.Context) ([]*nodes.Node, error)
	Tags(ctx context.Context) ([]*tags.Tag, error)
	Files(ctx context.Context) ([]*files.File, error)
	Users(ctx context.Context) ([]*users.User, error)
}

// SessionProvider connects to servers, either directly or through a stored
// profile.
type SessionProvider interface {
	// EstablishSession connects to url and fetches its capability
	// description.
	EstablishSession(ctx context.Context, url string, c *creds.Credentials, insecure bool) (Session, error)

	// SessionForProfile connects using a stored profile. It returns a
	// RecordNotFound error when no profile has that name.
	SessionForProfile(ctx context.Context, profileName string) (Session, error)
}
