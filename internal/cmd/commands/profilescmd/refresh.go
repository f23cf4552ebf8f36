// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package profilescmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
	"github.com/hashicorp/go-multierror"
)

var _ base.Handler = (*CmdRefreshProfiles)(nil)

type CmdRefreshProfiles struct {
	*base.Command
}

func (c *CmdRefreshProfiles) Doc() string {
	return `Refresh the API descriptions of all profiles.

This retrieves the latest version of the help information for each profile.
Use it to update your command-line client's information after an upgrade to
the MAAS server.`
}

// Execute reads every profile, fetches fresh descriptions without holding
// the store, and then writes back the descriptions of the profiles that were
// not changed in the meantime.
func (c *CmdRefreshProfiles) Execute(ctx context.Context, _ *base.Options) error {
	const op = "profilescmd.(CmdRefreshProfiles).Execute"

	var snapshot []*profiles.Profile
	if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
		for _, name := range s.Names() {
			p, err := s.Get(ctx, name)
			if err != nil {
				return err
			}
			snapshot = append(snapshot, p)
		}
		return nil
	}); err != nil {
		return errors.Wrap(ctx, err, op)
	}

	var refreshErr *multierror.Error
	descriptions := make(map[string]json.RawMessage, len(snapshot))
	for _, p := range snapshot {
		session, err := c.Sessions.EstablishSession(ctx, p.Url, p.Credentials, false)
		if err != nil {
			if errors.IsInterruptedError(err) || ctx.Err() != nil {
				return errors.Wrap(ctx, err, op)
			}
			refreshErr = multierror.Append(refreshErr, fmt.Errorf("%s: %s", p.Name, errors.Message(err)))
			continue
		}
		descriptions[p.Name] = session.Description()
	}

	if len(descriptions) > 0 {
		if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
			for _, old := range snapshot {
				description, ok := descriptions[old.Name]
				if !ok {
					continue
				}
				cur, err := s.Get(ctx, old.Name)
				switch {
				case errors.IsNotFoundError(err):
					c.Logger.Debug("profile removed during refresh", "name", old.Name)
					continue
				case err != nil:
					return err
				}
				if cur.Url != old.Url || !sameCredentials(cur, old) {
					c.Logger.Debug("profile changed during refresh", "name", old.Name)
					continue
				}
				cur.Description = description
				if err := s.Put(ctx, cur); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return errors.Wrap(ctx, err, op)
		}
	}

	if refreshErr != nil {
		refreshErr.ErrorFormat = errors.SingleLineFormat
		return errors.Wrap(ctx, refreshErr, op, errors.WithCode(errors.RemoteCall),
			errors.WithMsg(fmt.Sprintf("unable to refresh %d of %d profiles", len(refreshErr.Errors), len(snapshot))))
	}
	return nil
}

func sameCredentials(a, b *profiles.Profile) bool {
	switch {
	case a.Credentials == nil || b.Credentials == nil:
		return a.Credentials == nil && b.Credentials == nil
	default:
		return *a.Credentials == *b.Credentials
	}
}
