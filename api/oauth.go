// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alburnum/maas/internal/creds"
	"github.com/gomodule/oauth1/oauth"
	"github.com/hashicorp/go-uuid"
)

// signer signs requests with a MAAS API key using OAuth 1.0 PLAINTEXT. MAAS
// API keys have an empty consumer secret.
type signer struct {
	client oauth.Client
	token  oauth.Credentials
}

func newSigner(c *creds.Credentials) *signer {
	return &signer{
		client: oauth.Client{
			Credentials:     oauth.Credentials{Token: c.ConsumerKey},
			SignatureMethod: oauth.PLAINTEXT,
		},
		token: oauth.Credentials{Token: c.TokenKey, Secret: c.TokenSecret},
	}
}

// sign sets a freshly generated Authorization header on req. It must run
// once per attempt, MAAS rejects a reused nonce.
func (s *signer) sign(req *http.Request) error {
	if err := s.client.SetAuthorizationHeader(req.Header, &s.token, req.Method, req.URL, nil); err != nil {
		return err
	}
	header := req.Header.Get("Authorization")
	// MAAS requires a timestamp and nonce even for PLAINTEXT signatures.
	if !strings.Contains(header, "oauth_timestamp=") {
		header += `, oauth_timestamp="` + strconv.FormatInt(time.Now().Unix(), 10) + `"`
	}
	if !strings.Contains(header, "oauth_nonce=") {
		nonce, err := uuid.GenerateUUID()
		if err != nil {
			return err
		}
		header += `, oauth_nonce="` + nonce + `"`
	}
	req.Header.Set("Authorization", header)
	return nil
}
