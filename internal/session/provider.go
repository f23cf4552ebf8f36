// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package session

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
)

var _ base.SessionProvider = (*Provider)(nil)

// Provider connects commands to servers. Sessions for stored profiles are
// built from the profile store at storePath, or the default store when it is
// empty.
type Provider struct {
	storePath string
	opt       []Option
	opts      options
}

// NewProvider returns a Provider reading profiles from storePath.
func NewProvider(storePath string, opt ...Option) *Provider {
	return &Provider{
		storePath: storePath,
		opt:       opt,
		opts:      getOpts(opt...),
	}
}

// EstablishSession connects to url and fetches its capability description.
func (p *Provider) EstablishSession(ctx context.Context, url string, c *creds.Credentials, insecure bool) (base.Session, error) {
	s, err := Establish(ctx, url, c, insecure, p.opt...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SessionForProfile reads the named profile in a short store transaction and
// builds a session from it. No request is made to the server.
func (p *Provider) SessionForProfile(ctx context.Context, profileName string) (base.Session, error) {
	const op = "session.(Provider).SessionForProfile"
	var profile *profiles.Profile
	path, err := profiles.ResolvePath(ctx, p.storePath)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	storeOpts := append([]profiles.Option{profiles.WithLogger(p.opts.withLogger)}, p.opts.withStoreOpts...)
	err = profiles.With(ctx, path, func(s *profiles.Store) error {
		var err error
		profile, err = s.Get(ctx, profileName)
		return err
	}, storeOpts...)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	s, err := FromProfile(ctx, profile, p.opt...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
