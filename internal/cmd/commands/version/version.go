// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package version

import (
	"context"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/version"
)

var _ base.Handler = (*Command)(nil)

type Command struct {
	*base.Command
}

func (c *Command) Doc() string {
	return "Prints the version of this CLI."
}

func (c *Command) Execute(_ context.Context, _ *base.Options) error {
	c.UI.Output(version.Get().FullVersionNumber(true))
	return nil
}
