// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Colors used to highlight table cells.
const (
	ColorRed    = lipgloss.Color("1")
	ColorGreen  = lipgloss.Color("2")
	ColorYellow = lipgloss.Color("3")
	ColorBlue   = lipgloss.Color("4")
)

// OutputMode describes where output goes. It is decided once at startup and
// passed to everything that renders.
type OutputMode struct {
	// Terminal is true when output is an interactive terminal.
	Terminal bool
	// Color is true when ANSI colors may be emitted.
	Color bool
}

// DetectOutputMode inspects w and the color settings of the environment.
func DetectOutputMode(w io.Writer, noColor bool) OutputMode {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return OutputMode{}
	}
	return OutputMode{
		Terminal: true,
		Color:    !noColor && !color.NoColor,
	}
}

func (m OutputMode) renderer() *lipgloss.Renderer {
	profile := termenv.Ascii
	if m.Color {
		profile = termenv.ANSI
	}
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return r
}

// Colorize returns s in the given color when the mode allows color, and s
// unchanged otherwise.
func (m OutputMode) Colorize(s string, c lipgloss.Color) string {
	if !m.Color || s == "" {
		return s
	}
	return m.renderer().NewStyle().Foreground(c).Render(s)
}
