// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package nodes

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alburnum/maas/api"
)

// Node is a machine managed by MAAS.
type Node struct {
	Hostname     string `mapstructure:"hostname"`
	SystemId     string `mapstructure:"system_id"`
	Architecture string `mapstructure:"architecture"`
	CpuCount     int    `mapstructure:"cpu_count"`
	Memory       int    `mapstructure:"memory"`
	Status       string `mapstructure:"substatus_name"`
	PowerState   string `mapstructure:"power_state"`
}

type Client struct {
	client *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{client: c}
}

// List returns every node visible to the client's credentials.
func (c *Client) List(ctx context.Context) ([]*Node, error) {
	if c.client == nil {
		return nil, fmt.Errorf("nil client")
	}
	var raw []map[string]any
	if err := c.client.Get(ctx, "nodes/", url.Values{"op": {"list"}}, &raw); err != nil {
		return nil, fmt.Errorf("error listing nodes: %w", err)
	}
	items := make([]*Node, 0, len(raw))
	if err := api.DecodeRecords(raw, &items); err != nil {
		return nil, fmt.Errorf("error decoding nodes: %w", err)
	}
	return items, nil
}
