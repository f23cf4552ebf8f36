// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package registry

import (
	"context"
	"testing"

	"github.com/alburnum/maas/internal/cmd/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CmdListNodes struct{}

func (*CmdListNodes) Doc() string { return "List nodes." }
func (*CmdListNodes) Execute(context.Context, *base.Options) error {
	return nil
}
func (*CmdListNodes) Flags(set *base.FlagSets) {
	set.Positional(&base.PositionalVar{Name: "profile-name", Usage: "The profile to use."})
}

type cmd_refresh_profiles struct{}

func (cmd_refresh_profiles) Doc() string {
	return `Refresh the API descriptions of all profiles.

	This retrieves the latest version of the help information for each
	profile.

	Run it after an upgrade.`
}
func (cmd_refresh_profiles) Execute(context.Context, *base.Options) error { return nil }

type Login struct{}

func (Login) Doc() string { return "Log in." }
func (Login) Execute(context.Context, *base.Options) error { return nil }

func TestNameOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "list-nodes", NameOf(&CmdListNodes{}))
	assert.Equal(t, "refresh-profiles", NameOf(cmd_refresh_profiles{}))
	assert.Equal(t, "login", NameOf(Login{}))
	assert.Equal(t, "login", NameOf(&Login{}))
}

func TestParseDoc(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		doc          string
		wantSynopsis string
		wantBody     string
	}{
		{
			name:         "one-line",
			doc:          "List tags.",
			wantSynopsis: "List tags.",
		},
		{
			name:         "empty",
			doc:          "",
			wantSynopsis: "",
		},
		{
			name:         "wrapped-synopsis",
			doc:          "\nLog in to a remote API, and remember its\n    description and credentials.\n\n    If credentials are not provided, they\n    will be prompted for.\n",
			wantSynopsis: "Log in to a remote API, and remember its description and credentials.",
			wantBody:     "If credentials are not provided, they\nwill be prompted for.",
		},
		{
			name:         "paragraphs",
			doc:          cmd_refresh_profiles{}.Doc(),
			wantSynopsis: "Refresh the API descriptions of all profiles.",
			wantBody:     "This retrieves the latest version of the help information for each\nprofile.\n\nRun it after an upgrade.",
		},
		{
			name:         "keeps-relative-indent",
			doc:          "Summary.\n\n  Example:\n\n      maas login admin\n",
			wantSynopsis: "Summary.",
			wantBody:     "Example:\n\n    maas login admin",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synopsis, body := ParseDoc(tt.doc)
			assert.Equal(t, tt.wantSynopsis, synopsis)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("derived-name", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		r := New()
		calls := 0
		n := r.Register(func() base.Handler {
			calls++
			return &CmdListNodes{}
		})
		assert.Equal(1, calls)
		assert.Equal("list-nodes", n.Name())
		assert.Equal("List nodes.", n.Synopsis())
		assert.Equal("", n.HelpBody())
		assert.Nil(n.Parent())
		assert.Nil(n.Children())
		require.Len(n.Flags().Positionals(), 1)

		got, ok := r.Lookup("list-nodes")
		require.True(ok)
		assert.Same(n, got)
	})
	t.Run("with-name", func(t *testing.T) {
		r := New()
		n := r.Register(func() base.Handler { return Login{} }, WithName("log-in"))
		assert.Equal(t, "log-in", n.Name())
		_, ok := r.Lookup("login")
		assert.False(t, ok)
	})
	t.Run("duplicate", func(t *testing.T) {
		r := New()
		r.Register(func() base.Handler { return Login{} })
		assert.PanicsWithValue(t, `command "login" registered twice`, func() {
			r.Register(func() base.Handler { return &Login{} })
		})
	})
	t.Run("nil-handler", func(t *testing.T) {
		r := New()
		assert.Panics(t, func() {
			r.Register(func() base.Handler { return nil })
		})
	})
	t.Run("hidden", func(t *testing.T) {
		assert := assert.New(t)
		r := New()
		r.Register(func() base.Handler { return Login{} })
		r.Register(func() base.Handler { return &CmdListNodes{} }, WithHidden())
		r.Register(func() base.Handler { return cmd_refresh_profiles{} })
		assert.Equal([]string{"login", "refresh-profiles"}, r.Names())
		n, ok := r.Lookup("list-nodes")
		assert.True(ok)
		assert.True(n.Hidden())
	})
}

func TestNode_Children(t *testing.T) {
	t.Parallel()
	assert, require := assert.New(t), require.New(t)
	r := New()
	profiles := r.Register(func() base.Handler { return Login{} }, WithName("profiles"))
	assert.Nil(profiles.Children())

	refresh := profiles.Register(func() base.Handler { return cmd_refresh_profiles{} })
	require.NotNil(profiles.Children())
	assert.Same(profiles, refresh.Parent())
	assert.Equal([]string{"profiles", "refresh-profiles"}, refresh.Path())

	deep := refresh.Register(func() base.Handler { return &CmdListNodes{} })
	assert.Equal([]string{"profiles", "refresh-profiles", "list-nodes"}, deep.Path())

	// Same name at another level is fine.
	r.Register(func() base.Handler { return &CmdListNodes{} })
	assert.PanicsWithValue(`command "profiles refresh-profiles" registered twice`, func() {
		profiles.Register(func() base.Handler { return cmd_refresh_profiles{} })
	})

	n, rest := r.Resolve([]string{"profiles", "refresh-profiles", "list-nodes", "admin"})
	assert.Same(deep, n)
	assert.Equal([]string{"admin"}, rest)

	n, rest = r.Resolve([]string{"profiles", "admin"})
	assert.Same(profiles, n)
	assert.Equal([]string{"admin"}, rest)

	n, rest = r.Resolve([]string{"bogus"})
	assert.Nil(n)
	assert.Equal([]string{"bogus"}, rest)

	n, rest = r.Resolve(nil)
	assert.Nil(n)
	assert.Empty(rest)
}

func TestNode_Help(t *testing.T) {
	t.Parallel()
	r := New()
	n := r.Register(func() base.Handler { return &CmdListNodes{} })
	assert.Equal(t, "Usage: maas list-nodes <profile-name>", n.Usage("maas"))
	want := `Usage: maas list-nodes <profile-name>

List nodes.

Arguments:

  profile-name
      The profile to use.`
	assert.Equal(t, want, n.Help("maas"))

	parent := r.Register(func() base.Handler { return cmd_refresh_profiles{} })
	parent.Register(func() base.Handler { return Login{} })
	want = `Usage: maas refresh-profiles [<subcommand>]

Refresh the API descriptions of all profiles.

This retrieves the latest version of the help information for each profile.

Run it after an upgrade.

Subcommands:

    login    Log in.`
	assert.Equal(t, want, parent.Help("maas"))
}
