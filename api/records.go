// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// Get performs a GET against requestPath and decodes the JSON body into
// target. Non-2xx responses are returned as *Error.
func (c *Client) Get(ctx context.Context, requestPath string, query url.Values, target any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, requestPath, query)
	if err != nil {
		return fmt.Errorf("error creating request for %s: %w", requestPath, err)
	}
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("error performing client request for %s: %w", requestPath, err)
	}
	apiErr, err := resp.Decode(target)
	if err != nil {
		return fmt.Errorf("error decoding response for %s: %w", requestPath, err)
	}
	if apiErr != nil {
		return apiErr
	}
	return nil
}

// DecodeRecords converts generic JSON objects into the struct, or slice of
// structs, pointed to by out. Fields are matched with `mapstructure` tags and
// loosely typed values, such as numbers sent as strings, are converted.
func DecodeRecords(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
