// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultVersionPath is appended to server URLs that do not name an API
// version.
const DefaultVersionPath = "api/1.0/"

var versionPath = regexp.MustCompile(`/api/[0-9.]+/$`)

// NormalizeURL returns the API URL for a server URL: it must be an absolute
// http or https URL, gains a trailing slash, and has DefaultVersionPath
// appended unless it already ends in /api/<version>/.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("url %q must be an absolute http or https url", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if !versionPath.MatchString(u.Path) {
		u.Path += DefaultVersionPath
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
