// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Response is a raw response that wraps an HTTP response. Its body has
// already been read in full.
type Response struct {
	resp *http.Response
	body *bytes.Buffer
}

func newResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()
	body := new(bytes.Buffer)
	if _, err := io.Copy(body, resp.Body); err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return &Response{resp: resp, body: body}, nil
}

// StatusCode returns the HTTP status code of the response.
func (r *Response) StatusCode() int {
	return r.resp.StatusCode
}

// Body returns the response body.
func (r *Response) Body() []byte {
	return r.body.Bytes()
}

// Decode decodes a successful JSON response into target. Non-2xx responses
// are returned as an *Error instead, with err reserved for failures decoding
// the body.
func (r *Response) Decode(target any) (*Error, error) {
	if r.resp.StatusCode < 200 || r.resp.StatusCode >= 300 {
		return newError(r.resp.StatusCode, r.body.String()), nil
	}
	if target == nil {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(r.body.Bytes()))
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		ct := r.resp.Header.Get("Content-Type")
		if ct != "" && !strings.Contains(ct, "json") {
			return nil, fmt.Errorf("expected a json response, got %q: %w", ct, err)
		}
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}
	return nil, nil
}
