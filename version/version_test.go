// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		info      Info
		wantNum   string
		wantFull  string
		wantAgent string
	}{
		{
			name:      "release",
			info:      Info{Version: "0.1.0"},
			wantNum:   "0.1.0",
			wantFull:  "maas v0.1.0 (abc123)",
			wantAgent: "maas-cli/0.1.0",
		},
		{
			name:      "prerelease",
			info:      Info{Version: "0.2.0", Prerelease: "dev", Metadata: "ubuntu"},
			wantNum:   "0.2.0-dev+ubuntu",
			wantFull:  "maas v0.2.0-dev+ubuntu (abc123)",
			wantAgent: "maas-cli/0.2.0-dev+ubuntu",
		},
		{
			name:      "unknown",
			info:      Info{Version: "unknown"},
			wantNum:   "(version unknown)",
			wantFull:  "maas (version unknown)",
			wantAgent: "maas-cli",
		},
		{
			name:      "empty",
			wantNum:   "(version unknown)",
			wantFull:  "maas (version unknown)",
			wantAgent: "maas-cli",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.info.Revision = "abc123"
			assert.Equal(t, tt.wantNum, tt.info.VersionNumber())
			assert.Equal(t, tt.wantFull, tt.info.FullVersionNumber(true))
			assert.Equal(t, tt.wantAgent, tt.info.UserAgent())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.Revision)
	assert.NotEmpty(t, info.VersionNumber())
}
