// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package files

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alburnum/maas/api"
)

// File is a file stored on the server.
type File struct {
	Filename        string `mapstructure:"filename"`
	AnonResourceUri string `mapstructure:"anon_resource_uri"`
}

type Client struct {
	client *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{client: c}
}

// List returns every file stored for the client's user.
func (c *Client) List(ctx context.Context) ([]*File, error) {
	if c.client == nil {
		return nil, fmt.Errorf("nil client")
	}
	var raw []map[string]any
	if err := c.client.Get(ctx, "files/", url.Values{"op": {"list"}}, &raw); err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	items := make([]*File, 0, len(raw))
	if err := api.DecodeRecords(raw, &items); err != nil {
		return nil, fmt.Errorf("error decoding files: %w", err)
	}
	return items, nil
}
