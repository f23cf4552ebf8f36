// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/cmd/registry"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
	"github.com/alburnum/maas/internal/session"
	"github.com/alburnum/maas/version"
	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"
	"github.com/spf13/pflag"
)

// shutdownGracePeriod is how long an interrupted command gets to release
// the profile store before the process exits.
const shutdownGracePeriod = 3 * time.Second

type RunOptions struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// ShutdownCh is closed to interrupt the running command. When nil a
	// channel closed on SIGINT or SIGTERM is used.
	ShutdownCh chan struct{}
	// Sessions overrides how commands connect to servers.
	Sessions base.SessionProvider
	// OutputMode overrides the mode detected from Stdout.
	OutputMode *base.OutputMode
	// StoreOptions are passed to every profile store a command opens.
	StoreOptions []profiles.Option
}

func Run(args []string) int {
	return RunCustom(args, nil)
}

// RunCustom runs the command named by args with the streams and overrides
// in runOpts and returns the process exit code.
func RunCustom(args []string, runOpts *RunOptions) int {
	if runOpts == nil {
		runOpts = &RunOptions{}
	}
	if runOpts.Stdout == nil {
		runOpts.Stdout = os.Stdout
	}
	if runOpts.Stderr == nil {
		runOpts.Stderr = os.Stderr
	}
	if runOpts.Stdin == nil {
		runOpts.Stdin = os.Stdin
	}

	cfg, err := base.LoadConfig()
	if err != nil {
		fmt.Fprintf(runOpts.Stderr, "Error loading configuration: %s\n", err)
		return base.CommandUserError
	}

	globals, args, globalsErr := parseGlobalFlags(args)

	logger, err := base.SetupLogging(runOpts.Stderr, globals.debug, cfg)
	if err != nil {
		fmt.Fprintf(runOpts.Stderr, "Error setting up logging: %s\n", err)
		return base.CommandUserError
	}

	mode := base.DetectOutputMode(runOpts.Stdout, cfg.NoColor)
	if runOpts.OutputMode != nil {
		mode = *runOpts.OutputMode
	}
	ui := base.NewUI(runOpts.Stdin, runOpts.Stdout, runOpts.Stderr, mode)

	shutdownCh := runOpts.ShutdownCh
	if shutdownCh == nil {
		shutdownCh = base.MakeShutdownCh()
	}
	sessions := runOpts.Sessions
	if sessions == nil {
		sessions = session.NewProvider(cfg.ProfilesPath,
			session.WithLogger(logger),
			session.WithStoreOptions(runOpts.StoreOptions...))
	}

	r := initCommands(ui,
		base.WithLogger(logger),
		base.WithOutputMode(mode),
		base.WithStdin(runOpts.Stdin),
		base.WithShutdownCh(shutdownCh),
		base.WithProfilesPath(cfg.ProfilesPath),
		base.WithStoreOptions(runOpts.StoreOptions...),
		base.WithSessions(sessions),
	)

	if os.Getenv("COMP_LINE") != "" {
		c := complete.New(progName, completionTree(r))
		c.Out = runOpts.Stdout
		c.Complete()
		return base.CommandSuccess
	}

	switch {
	case globalsErr != nil:
		return usageError(ui, rootUsage(), globalsErr.Error())
	case globals.version:
		ui.Output(version.Get().FullVersionNumber(true))
		return base.CommandSuccess
	case len(args) == 0 && globals.help:
		ui.Output(rootHelp(r))
		return base.CommandSuccess
	case len(args) == 0:
		return usageError(ui, rootHelp(r), "No arguments given.")
	}

	node, rest := r.Resolve(args)
	if node == nil {
		return usageError(ui, rootHelp(r), fmt.Sprintf("unknown command %q", args[0]))
	}
	if globals.help || wantsHelp(rest) {
		ui.Output(node.Help(progName))
		return base.CommandSuccess
	}
	if err := node.Flags().Parse(rest); err != nil {
		return usageError(ui, node.Usage(progName), err.Error())
	}

	opts := base.NewOptions(node.Path(), globals.debug, node.Flags(), node.Handler())
	err = execute(context.Background(), logger, shutdownCh, node, opts)
	switch {
	case err == nil:
		return base.CommandSuccess
	case errors.IsInterruptedError(err):
		return base.CommandInterrupted
	case globals.debug:
		ui.Error(errors.Detail(err))
		return base.CommandUserError
	default:
		return usageError(ui, node.Usage(progName), errors.Message(err))
	}
}

type globalFlags struct {
	debug   bool
	help    bool
	version bool
}

// parseGlobalFlags parses the flags before the command name. The returned
// flags are usable even when err is set.
func parseGlobalFlags(args []string) (*globalFlags, []string, error) {
	g := new(globalFlags)
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.BoolVar(&g.debug, base.FlagNameDebug, false, "")
	fs.BoolVarP(&g.help, "help", "h", false, "")
	fs.BoolVarP(&g.version, "version", "v", false, "")
	if err := fs.Parse(args); err != nil {
		return g, nil, err
	}
	return g, fs.Args(), nil
}

// wantsHelp reports whether -h or --help appears before any "--".
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// execute runs the handler of node. When shutdownCh closes the handler's
// context is canceled and the handler gets shutdownGracePeriod to return.
func execute(ctx context.Context, logger hclog.Logger, shutdownCh <-chan struct{}, node *registry.Node, opts *base.Options) error {
	const op = "cmd.execute"
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- node.Handler().Execute(ctx, opts)
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdownCh:
	}

	logger.Debug("interrupted, waiting for command to stop", "command", opts.Command())
	cancel()
	select {
	case <-errCh:
	case <-time.After(shutdownGracePeriod):
		logger.Warn("command did not stop in time", "command", opts.Command())
	}
	return errors.New(ctx, errors.Interrupted, op, "interrupted")
}

// completionTree describes the visible commands of r for shell completion.
func completionTree(r *registry.Registry) complete.Command {
	sub := complete.Commands{}
	for _, n := range r.Nodes() {
		c := complete.Command{
			Flags: n.Flags().Completions(),
			Args:  n.Flags().ArgsCompletion(),
		}
		if children := n.Children(); children != nil {
			c.Sub = completionTree(children).Sub
		}
		sub[n.Name()] = c
	}
	return complete.Command{
		Sub: sub,
		GlobalFlags: complete.Flags{
			"-h":        complete.PredictNothing,
			"--help":    complete.PredictNothing,
			"-v":        complete.PredictNothing,
			"--version": complete.PredictNothing,
		},
	}
}
