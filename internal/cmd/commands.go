// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/cmd/commands/login"
	"github.com/alburnum/maas/internal/cmd/commands/logout"
	"github.com/alburnum/maas/internal/cmd/commands/origincmd"
	"github.com/alburnum/maas/internal/cmd/commands/profilescmd"
	"github.com/alburnum/maas/internal/cmd/commands/version"
	"github.com/alburnum/maas/internal/cmd/registry"
	"github.com/mitchellh/cli"
)

// initCommands builds the command tree. Every command gets its own
// base.Command built from opt.
func initCommands(ui cli.Ui, opt ...base.Option) *registry.Registry {
	getBaseCommand := func() *base.Command {
		return base.NewCommand(ui, opt...)
	}
	getOrigin := func() origincmd.Origin {
		return origincmd.Origin{Command: getBaseCommand()}
	}

	r := registry.New()

	// Profile-independent commands.
	r.Register(func() base.Handler {
		return &login.CmdLogin{Command: getBaseCommand()}
	})
	r.Register(func() base.Handler {
		return &logout.CmdLogout{Command: getBaseCommand()}
	})
	r.Register(func() base.Handler {
		return &profilescmd.CmdListProfiles{Command: getBaseCommand()}
	})
	r.Register(func() base.Handler {
		return &profilescmd.CmdRefreshProfiles{Command: getBaseCommand()}
	})

	// Commands against the server of a profile.
	r.Register(func() base.Handler {
		return &origincmd.CmdListNodes{Origin: getOrigin()}
	})
	r.Register(func() base.Handler {
		return &origincmd.CmdListTags{Origin: getOrigin()}
	})
	r.Register(func() base.Handler {
		return &origincmd.CmdListFiles{Origin: getOrigin()}
	})
	r.Register(func() base.Handler {
		return &origincmd.CmdListUsers{Origin: getOrigin()}
	})

	r.Register(func() base.Handler {
		return &version.Command{Command: getBaseCommand()}
	}, registry.WithName("version"), registry.WithHidden())

	return r
}
