// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alburnum/maas/internal/profiles"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/require"
)

// TestCommand returns a Command that writes to a mock UI and keeps its
// profile store in a temporary directory. It never listens for signals.
func TestCommand(t testing.TB, opt ...Option) (*Command, *cli.MockUi) {
	t.Helper()
	ui := cli.NewMockUi()
	opt = append([]Option{
		WithShutdownCh(make(chan struct{})),
		WithProfilesPath(filepath.Join(t.TempDir(), DefaultTestStoreName)),
		WithStoreOptions(profiles.WithLockInterval(time.Millisecond, 10*time.Millisecond)),
	}, opt...)
	return NewCommand(ui, opt...), ui
}

// DefaultTestStoreName is the file name of the store TestCommand creates.
const DefaultTestStoreName = "profiles.db"

// TestExecute declares h's arguments, parses args and executes h, the way
// the dispatcher does for a command at path.
func TestExecute(t testing.TB, h Handler, path string, args ...string) error {
	t.Helper()
	set := NewFlagSets()
	if d, ok := h.(FlagDeclarer); ok {
		d.Flags(set)
	}
	require.NoError(t, set.Parse(args))
	return h.Execute(context.Background(), NewOptions([]string{path}, false, set, h))
}
