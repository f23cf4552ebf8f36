// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package origincmd

import (
	"context"
	"strings"

	"github.com/alburnum/maas/api/nodes"
	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

var (
	_ base.Handler      = (*CmdListNodes)(nil)
	_ base.FlagDeclarer = (*CmdListNodes)(nil)
)

var statusColors = map[string]lipgloss.Color{
	"Commissioning":        base.ColorYellow,
	"Failed commissioning": base.ColorRed,
	"Missing":              base.ColorRed,
	"Ready":                base.ColorGreen,
	"Reserved":             base.ColorBlue,
	"Allocated":            base.ColorBlue,
	"Deploying":            base.ColorBlue,
	"Deployed":             base.ColorBlue,
	"Broken":               base.ColorRed,
	"Failed deployment":    base.ColorRed,
	"Releasing":            base.ColorBlue,
	"Releasing failed":     base.ColorRed,
	"Disk erasing":         base.ColorBlue,
	"Failed disk erasing":  base.ColorRed,
}

var powerColors = map[string]lipgloss.Color{
	"on":    base.ColorGreen,
	"error": base.ColorRed,
}

type CmdListNodes struct {
	Origin
}

func (c *CmdListNodes) Doc() string {
	return "List nodes."
}

func (c *CmdListNodes) Execute(ctx context.Context, opts *base.Options) error {
	const op = "origincmd.(CmdListNodes).Execute"
	s, err := c.session(ctx, opts)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	items, err := s.Nodes(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	rows := make([][]any, 0, len(items))
	for _, n := range items {
		rows = append(rows, []any{
			n.Hostname,
			n.SystemId,
			n.Architecture,
			n.CpuCount,
			n.Memory,
			c.status(n),
			c.power(n),
		})
	}
	c.printTable([]string{"Hostname", "System ID", "Arch", "#CPUs", "RAM", "Status", "Power"}, rows)
	return nil
}

func (c *CmdListNodes) status(n *nodes.Node) string {
	if color, ok := statusColors[n.Status]; ok {
		return c.Output.Colorize(n.Status, color)
	}
	return n.Status
}

func (c *CmdListNodes) power(n *nodes.Node) string {
	state := capitalize(n.PowerState)
	if color, ok := powerColors[strings.ToLower(n.PowerState)]; ok {
		return c.Output.Colorize(state, color)
	}
	return state
}
