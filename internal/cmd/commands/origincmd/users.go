// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package origincmd

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
)

var _ base.Handler = (*CmdListUsers)(nil)

type CmdListUsers struct {
	Origin
}

func (c *CmdListUsers) Doc() string {
	return "List users."
}

func (c *CmdListUsers) Execute(ctx context.Context, opts *base.Options) error {
	const op = "origincmd.(CmdListUsers).Execute"
	s, err := c.session(ctx, opts)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	items, err := s.Users(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	rows := make([][]any, 0, len(items))
	for _, u := range items {
		admin := "No"
		if u.IsAdmin {
			admin = c.Output.Colorize("Yes", base.ColorGreen)
		}
		rows = append(rows, []any{u.Username, u.Email, admin})
	}
	c.printTable([]string{"User name", "Email address", "Admin?"}, rows)
	return nil
}
