// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package origincmd

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
)

var _ base.Handler = (*CmdListFiles)(nil)

type CmdListFiles struct {
	Origin
}

func (c *CmdListFiles) Doc() string {
	return "List files."
}

func (c *CmdListFiles) Execute(ctx context.Context, opts *base.Options) error {
	const op = "origincmd.(CmdListFiles).Execute"
	s, err := c.session(ctx, opts)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	items, err := s.Files(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	rows := make([][]any, 0, len(items))
	for _, f := range items {
		rows = append(rows, []any{f.Filename})
	}
	c.printTable([]string{"File name"}, rows)
	return nil
}
