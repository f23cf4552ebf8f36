// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package origincmd

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
)

var _ base.Handler = (*CmdListTags)(nil)

type CmdListTags struct {
	Origin
}

func (c *CmdListTags) Doc() string {
	return "List tags."
}

func (c *CmdListTags) Execute(ctx context.Context, opts *base.Options) error {
	const op = "origincmd.(CmdListTags).Execute"
	s, err := c.session(ctx, opts)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	items, err := s.Tags(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	rows := make([][]any, 0, len(items))
	for _, t := range items {
		rows = append(rows, []any{t.Name, t.Definition, t.KernelOptions, t.Comment})
	}
	c.printTable([]string{"Tag name", "Definition", "Kernel options", "Comment"}, rows)
	return nil
}
