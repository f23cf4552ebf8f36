// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package session

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/alburnum/maas/api"
	"github.com/alburnum/maas/internal/creds"
	"github.com/stretchr/testify/require"
)

// TestApiPath is where a TestServer serves the API, relative to its address.
const TestApiPath = "/MAAS/" + api.DefaultVersionPath

// TestServer is a fake MAAS server that supports the following endpoints
// below TestApiPath:
//
// * describe/
//
// * users/?op=whoami and users/
//
// * nodes/?op=list, tags/?op=list and files/?op=list
type TestServer struct {
	mu sync.RWMutex

	credentials   *creds.Credentials
	description   string
	whoAmIStatus  int
	records       map[string][]map[string]any
	authHeaders   []string
	describeCalls int

	httpServer *httptest.Server
	t          testing.TB
}

// StartTestServer returns a running TestServer that accepts anonymous
// requests and describes itself with an empty handler list.
func StartTestServer(t testing.TB) *TestServer {
	t.Helper()
	s := &TestServer{
		t:            t,
		description:  `{"handlers": [], "resources": []}`,
		whoAmIStatus: http.StatusOK,
		records:      make(map[string][]map[string]any),
	}
	s.httpServer = httptest.NewServer(s)
	s.httpServer.Config.ErrorLog = log.New(io.Discard, "", 0)
	t.Cleanup(s.httpServer.Close)
	return s
}

// Addr returns the scheme.host.port of the running server.
func (s *TestServer) Addr() string {
	return s.httpServer.URL
}

// Close shuts the server down. Later requests fail to connect.
func (s *TestServer) Close() {
	s.httpServer.Close()
}

// URL returns the server URL users log in with, without the API version.
func (s *TestServer) URL() string {
	return s.httpServer.URL + "/MAAS/"
}

// ApiURL returns the normalized API URL sessions use.
func (s *TestServer) ApiURL() string {
	return s.httpServer.URL + TestApiPath
}

// SetCredentials makes the server reject requests not signed with c. A nil
// c accepts anything.
func (s *TestServer) SetCredentials(c *creds.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials = c
}

// SetDescription sets the JSON document served at describe/.
func (s *TestServer) SetDescription(d string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = d
}

// SetWhoAmIStatus sets the status returned for users/?op=whoami.
func (s *TestServer) SetWhoAmIStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.whoAmIStatus = status
}

// SetRecords sets the objects listed for a collection such as "nodes".
func (s *TestServer) SetRecords(collection string, records []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[collection] = records
}

// AuthHeaders returns the Authorization headers received so far.
func (s *TestServer) AuthHeaders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.authHeaders...)
}

// DescribeCalls returns how often describe/ was requested.
func (s *TestServer) DescribeCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.describeCalls
}

// ServeHTTP satisfies the http.Handler interface
func (s *TestServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth := req.Header.Get("Authorization")
	s.authHeaders = append(s.authHeaders, auth)
	if s.credentials != nil && !strings.Contains(auth, `oauth_token="`+s.credentials.TokenKey+`"`) {
		http.Error(w, "Authorization Error: 'Expired timestamp' (unknown token)", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(req.URL.Path, TestApiPath) {
		http.NotFound(w, req)
		return
	}
	resource := strings.TrimPrefix(req.URL.Path, TestApiPath)
	op := req.URL.Query().Get("op")
	switch {
	case resource == "describe/":
		s.describeCalls++
		s.writeJSON(w, json.RawMessage(s.description))
	case resource == "users/" && op == "whoami":
		if s.whoAmIStatus != http.StatusOK {
			http.Error(w, http.StatusText(s.whoAmIStatus), s.whoAmIStatus)
			return
		}
		s.writeJSON(w, map[string]any{"username": "admin", "email": "admin@example.com", "is_superuser": true})
	case resource == "users/" && op == "":
		s.writeJSON(w, s.list("users"))
	case op == "list" && strings.HasSuffix(resource, "/"):
		s.writeJSON(w, s.list(strings.TrimSuffix(resource, "/")))
	default:
		http.NotFound(w, req)
	}
}

func (s *TestServer) list(collection string) []map[string]any {
	if r := s.records[collection]; r != nil {
		return r
	}
	return []map[string]any{}
}

func (s *TestServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(s.t, json.NewEncoder(w).Encode(v))
}
