// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package login

import (
	"context"
	"fmt"
	"strings"

	"github.com/alburnum/maas/api"
	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
	"github.com/posener/complete"
)

var (
	_ base.Handler      = (*CmdLogin)(nil)
	_ base.FlagDeclarer = (*CmdLogin)(nil)
)

const (
	argProfileName = "profile-name"
	argUrl         = "url"
	argCredentials = "credentials"
)

// CmdLogin stores a profile for a server after checking its credentials.
type CmdLogin struct {
	*base.Command

	flagInsecure bool
}

func (c *CmdLogin) Doc() string {
	return `Log in to a remote API, and remember its description and credentials.

If credentials are not provided on the command-line, they will be prompted
for interactively.`
}

func (c *CmdLogin) Flags(set *base.FlagSets) {
	set.Positional(&base.PositionalVar{
		Name:       argProfileName,
		Usage:      "The name with which you will later refer to this remote server and credentials within this tool.",
		Completion: c.PredictProfiles(),
	})
	set.Positional(&base.PositionalVar{
		Name:       argUrl,
		Usage:      "The URL of the remote API, e.g. http://example.com/MAAS/ or http://example.com/MAAS/api/1.0/ if you wish to specify the API version.",
		Completion: complete.PredictAnything,
	})
	set.Positional(&base.PositionalVar{
		Name:     argCredentials,
		Optional: true,
		Usage: `The credentials, also known as the API key, for the remote MAAS server.
			These can be found in the user preferences page in the web UI; they take
			the form of a long random-looking string composed of three parts,
			separated by colons. Use "-" to read them from standard input.`,
	})

	f := set.NewFlagSet("Command Options")
	f.BoolVar(&base.BoolVar{
		Name:      base.FlagNameInsecure,
		Shorthand: "k",
		Target:    &c.flagInsecure,
		EnvVar:    api.EnvMaasTLSInsecure,
		Usage:     "Disable SSL certificate check.",
	})
}

func (c *CmdLogin) Execute(ctx context.Context, opts *base.Options) error {
	const op = "login.(CmdLogin).Execute"
	name := opts.Arg(argProfileName)
	url, err := api.NormalizeURL(opts.Arg(argUrl))
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidAddress), errors.WithMsg("invalid url"))
	}

	// Credentials come from the argument, standard input or a prompt, and
	// are checked before anything is stored.
	var credentialsArg *string
	if opts.HasArg(argCredentials) {
		v := opts.Arg(argCredentials)
		credentialsArg = &v
	}
	credentials, err := creds.Obtain(ctx, c.UI, c.Stdin, credentialsArg)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}

	session, err := c.Sessions.EstablishSession(ctx, url, credentials, c.flagInsecure)
	if err != nil {
		if credentials != nil && errors.Match(errors.T(errors.Unauthorized), err) {
			return errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidCredentials), errors.WithMsg(msgRejected))
		}
		return errors.Wrap(ctx, err, op)
	}
	valid, err := session.ValidateCredentials(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, op)
	}
	if !valid {
		return errors.New(ctx, errors.InvalidCredentials, op, msgRejected)
	}

	profile := &profiles.Profile{
		Name:        name,
		Url:         session.Url(),
		Credentials: credentials,
		Description: session.Description(),
	}
	if err := c.WithProfiles(ctx, func(s *profiles.Store) error {
		return s.Put(ctx, profile)
	}); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	c.Logger.Debug("stored profile", "name", name, "url", profile.Url, "anonymous", profile.Anonymous())

	c.UI.Output(whatsNext(profile))
	return nil
}

const msgRejected = "The MAAS server rejected your API key."

func whatsNext(p *profiles.Profile) string {
	paragraphs := []string{
		base.WrapAtLength(fmt.Sprintf("You are now logged in to the MAAS server at %s with the profile name '%s'.", p.Url, p.Name)),
		base.WrapAtLength("For help with the available commands, try:"),
		"  maas --help",
	}
	return "\n" + strings.Join(paragraphs, "\n\n") + "\n"
}
