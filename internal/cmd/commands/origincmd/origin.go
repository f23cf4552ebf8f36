// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package origincmd holds the commands that list objects from the server a
// stored profile points at.
package origincmd

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/alburnum/maas/internal/errors"
)

const argProfileName = "profile-name"

// Origin is embedded by commands that act on the server of a stored
// profile.
type Origin struct {
	*base.Command
}

func (c *Origin) Flags(set *base.FlagSets) {
	set.Positional(&base.PositionalVar{
		Name:       argProfileName,
		Usage:      "The name with which a remote server and its credentials are referred to within this tool.",
		Completion: c.PredictProfiles(),
	})
}

// session connects to the server of the profile named on the command line.
func (c *Origin) session(ctx context.Context, opts *base.Options) (base.Session, error) {
	const op = "origincmd.(Origin).session"
	s, err := c.Sessions.SessionForProfile(ctx, opts.Arg(argProfileName))
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	return s, nil
}

// printTable sorts rows by their first cell and prints them below header.
func (c *Origin) printTable(header []string, rows [][]any) {
	sort.SliceStable(rows, func(i, j int) bool {
		return sortKey(rows[i]) < sortKey(rows[j])
	})
	c.UI.Output(c.Output.Table(header, rows))
}

func sortKey(row []any) string {
	if len(row) == 0 {
		return ""
	}
	if s, ok := row[0].(string); ok {
		return s
	}
	return ""
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
