// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alburnum/maas/internal/profiles"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/posener/complete"
)

const (
	// maxLineLength is the maximum width of any line.
	maxLineLength int = 78
)

// Command carries what every command needs from the process it runs in.
// Commands embed a *Command.
type Command struct {
	Context    context.Context
	UI         cli.Ui
	ShutdownCh chan struct{}
	Logger     hclog.Logger
	Output     OutputMode
	Stdin      io.Reader

	// ProfilesPath is the location of the profile store.
	ProfilesPath string
	// StoreOptions are passed to every profile store the command opens.
	StoreOptions []profiles.Option
	// Sessions connects to servers.
	Sessions SessionProvider
}

// NewCommand returns a new instance of a base.Command type
func NewCommand(ui cli.Ui, opt ...Option) *Command {
	opts := getOpts(opt...)
	ctx, cancel := context.WithCancel(context.Background())
	ret := &Command{
		UI:           ui,
		ShutdownCh:   opts.withShutdownCh,
		Context:      ctx,
		Logger:       opts.withLogger,
		Output:       opts.withOutputMode,
		Stdin:        opts.withStdin,
		ProfilesPath: opts.withProfilesPath,
		StoreOptions: opts.withStoreOptions,
		Sessions:     opts.withSessions,
	}
	if ret.ShutdownCh == nil {
		ret.ShutdownCh = MakeShutdownCh()
	}

	go func() {
		<-ret.ShutdownCh
		cancel()
	}()

	return ret
}

// MakeShutdownCh returns a channel that can be used for shutdown
// notifications for commands. This channel will send a message for every
// SIGINT or SIGTERM received.
func MakeShutdownCh() chan struct{} {
	resultCh := make(chan struct{})

	shutdownCh := make(chan os.Signal, 4)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdownCh
		close(resultCh)
	}()
	return resultCh
}

// WithProfiles opens the profile store for the duration of fn. The store is
// committed and unlocked when fn returns, fails or panics.
func (c *Command) WithProfiles(ctx context.Context, fn func(*profiles.Store) error) error {
	path, err := profiles.ResolvePath(ctx, c.ProfilesPath)
	if err != nil {
		return err
	}
	opt := append([]profiles.Option{profiles.WithLogger(c.Logger)}, c.StoreOptions...)
	return profiles.With(ctx, path, fn, opt...)
}

// PredictProfiles completes profile names from the store. A missing store
// is never created by completion.
func (c *Command) PredictProfiles() complete.Predictor {
	return complete.PredictFunc(func(complete.Args) []string {
		ctx := c.Context
		if ctx == nil {
			ctx = context.Background()
		}
		path, err := profiles.ResolvePath(ctx, c.ProfilesPath)
		if err != nil {
			return nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil
		}
		var names []string
		if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
			names = s.Names()
			return nil
		}); err != nil {
			c.Logger.Debug("unable to complete profile names", "error", err)
			return nil
		}
		return names
	})
}
