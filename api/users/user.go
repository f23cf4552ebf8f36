// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package users

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alburnum/maas/api"
)

// User is an account on the server.
type User struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	IsAdmin  bool   `mapstructure:"is_superuser"`
}

type Client struct {
	client *api.Client
}

func NewClient(c *api.Client) *Client {
	return &Client{client: c}
}

// List returns every user account.
func (c *Client) List(ctx context.Context) ([]*User, error) {
	if c.client == nil {
		return nil, fmt.Errorf("nil client")
	}
	var raw []map[string]any
	if err := c.client.Get(ctx, "users/", nil, &raw); err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	items := make([]*User, 0, len(raw))
	if err := api.DecodeRecords(raw, &items); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return items, nil
}

// WhoAmI returns the user the client's credentials belong to.
func (c *Client) WhoAmI(ctx context.Context) (*User, error) {
	if c.client == nil {
		return nil, fmt.Errorf("nil client")
	}
	var raw map[string]any
	if err := c.client.Get(ctx, "users/", url.Values{"op": {"whoami"}}, &raw); err != nil {
		return nil, fmt.Errorf("error reading current user: %w", err)
	}
	u := new(User)
	if err := api.DecodeRecords(raw, u); err != nil {
		return nil, fmt.Errorf("error decoding current user: %w", err)
	}
	return u, nil
}
