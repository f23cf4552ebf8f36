// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingServer struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

func (s *recordingServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	w.Header().Set("Content-Type", "application/json")
	if s.status != 0 {
		w.WriteHeader(s.status)
	}
	_, _ = w.Write([]byte(s.body))
}

func (s *recordingServer) last() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func testClient(t *testing.T, s *recordingServer, c *creds.Credentials) *Client {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	cfg := DefaultConfig()
	require.NoError(t, cfg.Error)
	cfg.Address = srv.URL + "/MAAS/"
	cfg.Credentials = c
	client, err := NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	client, err := NewClient(&Config{Address: "http://example.com/MAAS"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/MAAS/api/1.0/", client.Address())
	assert.Nil(t, client.Credentials())

	_, err = NewClient(&Config{Address: "example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an absolute http or https url")
}

func TestClient_SetAddress(t *testing.T) {
	t.Parallel()
	client, err := NewClient(&Config{})
	require.NoError(t, err)
	require.NoError(t, client.SetAddress("https://maas.example.com/MAAS/api/2.0"))
	assert.Equal(t, "https://maas.example.com/MAAS/api/2.0/", client.Address())
	assert.Error(t, client.SetAddress("ftp://maas.example.com/"))
	assert.Equal(t, "https://maas.example.com/MAAS/api/2.0/", client.Address())
}

func TestClient_NewRequest(t *testing.T) {
	t.Parallel()
	assert, require := assert.New(t), require.New(t)
	client, err := NewClient(&Config{Address: "http://example.com/MAAS/"})
	require.NoError(err)

	req, err := client.NewRequest(context.Background(), http.MethodGet, "nodes/", url.Values{"op": {"list"}})
	require.NoError(err)
	assert.Equal("http://example.com/MAAS/api/1.0/nodes/?op=list", req.URL.String())
	assert.Equal("application/json", req.Header.Get("Accept"))
	assert.Equal(version.Get().UserAgent(), req.Header.Get("User-Agent"))

	empty, err := NewClient(&Config{})
	require.NoError(err)
	_, err = empty.NewRequest(context.Background(), http.MethodGet, "nodes/", nil)
	assert.EqualError(err, "no server address configured")
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("anonymous", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		s := &recordingServer{body: `[{"filename": "preseed"}]`}
		client := testClient(t, s, nil)

		var out []map[string]any
		require.NoError(client.Get(context.Background(), "files/", url.Values{"op": {"list"}}, &out))
		assert.Equal([]map[string]any{{"filename": "preseed"}}, out)
		req := s.last()
		assert.Equal("/MAAS/api/1.0/files/", req.URL.Path)
		assert.Equal("list", req.URL.Query().Get("op"))
		assert.Empty(req.Header.Get("Authorization"))
	})

	t.Run("signed", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		s := &recordingServer{body: `{}`}
		client := testClient(t, s, &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"})

		require.NoError(client.Get(context.Background(), "describe/", nil, nil))
		auth := s.last().Header.Get("Authorization")
		assert.True(strings.HasPrefix(auth, "OAuth "))
		assert.Contains(auth, `oauth_consumer_key="ck"`)
		assert.Contains(auth, `oauth_token="tk"`)
		assert.Contains(auth, `oauth_signature="%26ts"`)
	})

	t.Run("api-error", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		s := &recordingServer{status: http.StatusForbidden, body: "Authorization Error:\n  token revoked"}
		client := testClient(t, s, nil)

		err := client.Get(context.Background(), "users/", nil, nil)
		require.Error(err)
		assert.True(errors.Is(err, ErrForbidden))
		apiErr := AsServerError(err)
		require.NotNil(apiErr)
		assert.Equal("Authorization Error: token revoked", apiErr.Message)
	})

	t.Run("canceled", func(t *testing.T) {
		s := &recordingServer{body: `{}`}
		client := testClient(t, s, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := client.Get(ctx, "describe/", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestConfig_ReadEnvironment(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		t.Setenv(EnvMaasMaxRetries, "3")
		t.Setenv(EnvMaasClientTimeout, "5")
		t.Setenv(EnvMaasTLSInsecure, "true")
		cfg := DefaultConfig()
		require.NoError(t, cfg.Error)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.TLSConfig.Insecure)
		transport := cfg.HttpClient.Transport.(*http.Transport)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv(EnvMaasClientTimeout, "1m30s")
		cfg := DefaultConfig()
		require.NoError(t, cfg.Error)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
	})
	t.Run("invalid", func(t *testing.T) {
		t.Setenv(EnvMaasMaxRetries, "many")
		cfg := DefaultConfig()
		require.Error(t, cfg.Error)
		assert.Contains(t, cfg.Error.Error(), "could not parse MAAS_MAX_RETRIES")

		_, err := NewClient(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error encountered setting up default configuration")
	})
}

func TestClient_RetrySignsEachAttempt(t *testing.T) {
	t.Parallel()
	assert, require := assert.New(t), require.New(t)

	var mu sync.Mutex
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		headers = append(headers, req.Header.Get("Authorization"))
		if len(headers) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	require.NoError(cfg.Error)
	cfg.Address = srv.URL + "/MAAS/"
	cfg.Credentials = &creds.Credentials{ConsumerKey: "ck", TokenKey: "tk", TokenSecret: "ts"}
	cfg.MaxRetries = 1
	cfg.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration { return 0 }
	client, err := NewClient(cfg)
	require.NoError(err)

	require.NoError(client.Get(context.Background(), "describe/", nil, nil))

	mu.Lock()
	defer mu.Unlock()
	require.Len(headers, 2)
	first, second := oauthParams(headers[0]), oauthParams(headers[1])
	assert.Equal("%26ts", second["oauth_signature"])
	require.NotEmpty(first["oauth_nonce"])
	assert.NotEqual(first["oauth_nonce"], second["oauth_nonce"])
}
