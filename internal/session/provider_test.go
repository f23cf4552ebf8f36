// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/alburnum/maas/internal/errors"
	"github.com/alburnum/maas/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := StartTestServer(t)
	srv.SetCredentials(testCreds)
	srv.SetRecords("users", []map[string]any{{"username": "admin"}})
	path := filepath.Join(t.TempDir(), "profiles.db")

	p := NewProvider(path)

	t.Run("establish", func(t *testing.T) {
		s, err := p.EstablishSession(ctx, srv.URL(), testCreds, false)
		require.NoError(t, err)
		assert.Equal(t, srv.ApiURL(), s.Url())
		assert.Equal(t, 1, srv.DescribeCalls())
	})

	require.NoError(t, profiles.With(ctx, path, func(s *profiles.Store) error {
		return s.Put(ctx, &profiles.Profile{
			Name:        "admin",
			Url:         srv.ApiURL(),
			Credentials: testCreds,
			Description: json.RawMessage(`{"handlers":[]}`),
		})
	}))

	t.Run("for-profile", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		before := srv.DescribeCalls()
		s, err := p.SessionForProfile(ctx, "admin")
		require.NoError(err)
		assert.Equal(srv.ApiURL(), s.Url())
		assert.Equal(testCreds, s.Credentials())
		assert.Equal(before, srv.DescribeCalls())

		users, err := s.Users(ctx)
		require.NoError(err)
		require.Len(users, 1)
		assert.Equal("admin", users[0].Username)
	})

	t.Run("unknown-profile", func(t *testing.T) {
		_, err := p.SessionForProfile(ctx, "nope")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, errors.Message(err), `profile "nope" not found`)
	})
}
