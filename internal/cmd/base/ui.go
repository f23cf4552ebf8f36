// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mitchellh/cli"
	"golang.org/x/term"
)

var TermWidth uint = 80

func init() {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && width > 0 {
		TermWidth = uint(width)
	}
}

// NewUI builds the UI commands print through. Colored output wraps the
// writers so ANSI sequences also work on Windows consoles.
func NewUI(stdin io.Reader, stdout, stderr io.Writer, mode OutputMode) cli.Ui {
	if mode.Color {
		if f, ok := stdout.(*os.File); ok {
			stdout = colorable.NewColorable(f)
		}
		if f, ok := stderr.(*os.File); ok {
			stderr = colorable.NewColorable(f)
		}
	} else {
		stdout = colorable.NewNonColorable(stdout)
		stderr = colorable.NewNonColorable(stderr)
	}

	var ui cli.Ui = &cli.BasicUi{
		Reader:      bufio.NewReader(stdin),
		Writer:      stdout,
		ErrorWriter: stderr,
	}
	if mode.Color {
		ui = &cli.ColoredUi{
			ErrorColor: cli.UiColorRed,
			WarnColor:  cli.UiColorYellow,
			Ui:         ui,
		}
	}
	return ui
}
