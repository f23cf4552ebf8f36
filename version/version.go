// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package version reports the build of the maas client. The variables are
// stamped at link time, for example
//
//	-ldflags "-X github.com/alburnum/maas/version.GitCommit=$(git rev-parse HEAD)"
package version

import "strings"

var (
	GitCommit         string
	GitDescribe       string
	Version           = "0.1.0"
	VersionPrerelease string
	VersionMetadata   string
)

const unknown = "unknown"

// Info is a snapshot of the build variables.
type Info struct {
	Revision   string
	Version    string
	Prerelease string
	Metadata   string
}

// Get returns the running build. A git describe string, when stamped,
// replaces the base version.
func Get() *Info {
	v := Version
	if GitDescribe != "" {
		v = strings.TrimPrefix(GitDescribe, "v")
	}
	return &Info{
		Revision:   GitCommit,
		Version:    v,
		Prerelease: VersionPrerelease,
		Metadata:   VersionMetadata,
	}
}

func (i *Info) isUnknown() bool {
	return i.Version == "" || i.Version == unknown
}

// VersionNumber returns the semver form, e.g. 0.2.0-dev+ubuntu.
func (i *Info) VersionNumber() string {
	if i.isUnknown() {
		return "(version unknown)"
	}
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Prerelease != "" {
		b.WriteString("-" + i.Prerelease)
	}
	if i.Metadata != "" {
		b.WriteString("+" + i.Metadata)
	}
	return b.String()
}

// FullVersionNumber is the line printed by --version, optionally followed
// by the git revision.
func (i *Info) FullVersionNumber(rev bool) string {
	if i.isUnknown() {
		return "maas (version unknown)"
	}
	s := "maas v" + i.VersionNumber()
	if rev && i.Revision != "" {
		s += " (" + i.Revision + ")"
	}
	return s
}

// UserAgent identifies the client in requests to a MAAS server.
func (i *Info) UserAgent() string {
	if i.isUnknown() {
		return "maas-cli"
	}
	return "maas-cli/" + i.VersionNumber()
}
