// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"strings"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/cmd/registry"
	"github.com/mitchellh/cli"
	"github.com/ryanuber/columnize"
)

const (
	progName    = "maas"
	description = "Interact with a remote MAAS server."
	epilog      = "http://maas.ubuntu.com/"
)

func rootUsage() string {
	return "Usage: " + progName + " [-h] [-v] <command> [<args>]"
}

// rootHelp lists the visible commands of r between the description and the
// epilog.
func rootHelp(r *registry.Registry) string {
	sections := []string{rootUsage(), base.WrapParagraphs(description)}

	nodes := r.Nodes()
	list := make([]string, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, n.Name()+"|"+n.Synopsis())
	}
	if len(list) > 0 {
		sections = append(sections, "Commands:\n\n"+base.ColumnOutput(list, &columnize.Config{Prefix: "    "}))
	}

	sections = append(sections,
		"Options:\n\n"+base.ColumnOutput([]string{
			"-h, --help|Show this help message and exit.",
			"-v, --version|Show the version and exit.",
		}, &columnize.Config{Prefix: "    "}),
		epilog,
	)
	return strings.Join(sections, "\n\n")
}

// usageError prints usage, a blank line and msg to the error stream.
func usageError(ui cli.Ui, usage, msg string) int {
	ui.Error(usage)
	ui.Error("")
	ui.Error(msg)
	return base.CommandUserError
}
