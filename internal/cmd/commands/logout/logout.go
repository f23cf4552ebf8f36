// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package logout

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
)

var (
	_ base.Handler      = (*CmdLogout)(nil)
	_ base.FlagDeclarer = (*CmdLogout)(nil)
)

const argProfileName = "profile-name"

type CmdLogout struct {
	*base.Command
}

func (c *CmdLogout) Doc() string {
	return `Log out of a remote API, purging any stored credentials.

This will remove the given profile from your command-line client. You can
re-create it by logging in again later.`
}

func (c *CmdLogout) Flags(set *base.FlagSets) {
	set.Positional(&base.PositionalVar{
		Name:       argProfileName,
		Usage:      "The name with which a remote server and its credentials are referred to within this tool.",
		Completion: c.PredictProfiles(),
	})
}

func (c *CmdLogout) Execute(ctx context.Context, opts *base.Options) error {
	const op = "logout.(CmdLogout).Execute"
	name := opts.Arg(argProfileName)
	if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
		return s.Delete(ctx, name)
	}); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	c.Logger.Debug("removed profile", "name", name)
	return nil
}
