// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/internal/errors"
	"github.com/mitchellh/copystructure"
)

// Profile is a named, persisted pairing of a server URL, optional
// credentials and the server's cached capability description.
type Profile struct {
	Name        string             `json:"name"`
	Url         string             `json:"url"`
	Credentials *creds.Credentials `json:"credentials"`
	Description json.RawMessage    `json:"description"`
}

// Anonymous reports whether the profile has no credentials.
func (p *Profile) Anonymous() bool {
	return p.Credentials == nil
}

// Validate checks the invariants every stored profile must satisfy.
func (p *Profile) Validate(ctx context.Context) error {
	const op = "profiles.(Profile).Validate"
	switch {
	case p == nil:
		return errors.New(ctx, errors.InvalidParameter, op, "missing profile")
	case p.Name == "":
		return errors.New(ctx, errors.InvalidParameter, op, "profile name must not be empty")
	case p.Url == "":
		return errors.New(ctx, errors.InvalidAddress, op, "profile url must not be empty")
	}
	u, err := url.Parse(p.Url)
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidAddress), errors.WithMsg(fmt.Sprintf("invalid url %q", p.Url)))
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New(ctx, errors.InvalidAddress, op, fmt.Sprintf("url %q must be an absolute http or https url", p.Url))
	}
	if err := p.Credentials.Validate(ctx); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	if len(p.Description) > 0 && !json.Valid(p.Description) {
		return errors.New(ctx, errors.InvalidParameter, op, "profile description is not valid json")
	}
	return nil
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp, err := copystructure.Copy(p)
	if err != nil {
		// copystructure only fails on types it cannot walk, none of which
		// appear in Profile.
		panic(fmt.Sprintf("profiles: unable to copy profile: %v", err))
	}
	return cp.(*Profile)
}

func (p *Profile) normalize() error {
	switch {
	case len(p.Description) == 0, string(p.Description) == "null":
		p.Description = nil
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, p.Description); err != nil {
		return err
	}
	p.Description = buf.Bytes()
	return nil
}
