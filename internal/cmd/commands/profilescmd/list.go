// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package profilescmd

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
)

var _ base.Handler = (*CmdListProfiles)(nil)

type CmdListProfiles struct {
	*base.Command
}

func (c *CmdListProfiles) Doc() string {
	return "List remote APIs that have been logged-in to."
}

func (c *CmdListProfiles) Execute(ctx context.Context, _ *base.Options) error {
	const op = "profilescmd.(CmdListProfiles).Execute"
	var rows [][]any
	if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
		for _, name := range s.Names() {
			p, err := s.Get(ctx, name)
			if err != nil {
				return err
			}
			if p.Anonymous() {
				rows = append(rows, []any{p.Name, p.Url, "(anonymous)"})
				continue
			}
			rows = append(rows, []any{p.Name, p.Url})
		}
		return nil
	}); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	c.UI.Output(c.Output.Table([]string{"Profile name", "URL"}, rows))
	return nil
}
