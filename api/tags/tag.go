// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package tags

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alburnum/maas/api"
)

// Tag is a label applied to nodes, optionally by XPath definition.
type Tag struct {
	Name          string `mapstructure:"name"`
	Definition    string `mapstructure:"definition"`
	KernelOptions string `mapstructure:"kernel_opts"`
	Comment       string `mapstructure:"comment"`
}

type Client struct {
	client *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{client: c}
}

// List returns every tag defined on the server.
func (c *Client) List(ctx context.Context) ([]*Tag, error) {
	if c.client == nil {
		return nil, fmt.Errorf("nil client")
	}
	var raw []map[string]any
	if err := c.client.Get(ctx, "tags/", url.Values{"op": {"list"}}, &raw); err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	items := make([]*Tag, 0, len(raw))
	if err := api.DecodeRecords(raw, &items); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	return items, nil
}
