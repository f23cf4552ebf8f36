// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"bytes"
	"testing"

	"github.com/alburnum/maas/internal/cmd/base/logging"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessLogLevelAndFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		flagLevel       string
		flagFormat      string
		configLevel     string
		configFormat    string
		wantLevel       hclog.Level
		wantFormat      logging.LogFormat
		wantErrContains string
	}{
		{
			name:       "defaults",
			wantLevel:  hclog.Warn,
			wantFormat: logging.UnspecifiedFormat,
		},
		{
			name:        "flag-wins",
			flagLevel:   "debug",
			configLevel: "error",
			wantLevel:   hclog.Debug,
		},
		{
			name:        "config-level",
			configLevel: " Info ",
			wantLevel:   hclog.Info,
		},
		{
			name:         "config-format",
			configFormat: "json",
			wantLevel:    hclog.Warn,
			wantFormat:   logging.JSONFormat,
		},
		{
			name:         "flag-format-wins",
			flagFormat:   "standard",
			configFormat: "json",
			wantLevel:    hclog.Warn,
			wantFormat:   logging.StandardFormat,
		},
		{
			name:            "bad-level",
			configLevel:     "loud",
			wantErrContains: "unknown log level: loud",
		},
		{
			name:            "bad-format",
			configFormat:    "xml",
			wantErrContains: "unknown log format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert, require := assert.New(t), require.New(t)
			level, format, err := ProcessLogLevelAndFormat(tt.flagLevel, tt.flagFormat, tt.configLevel, tt.configFormat)
			if tt.wantErrContains != "" {
				require.Error(err)
				assert.Contains(err.Error(), tt.wantErrContains)
				return
			}
			require.NoError(err)
			assert.Equal(tt.wantLevel, level)
			assert.Equal(tt.wantFormat, format)
		})
	}
}

func TestSetupLogging(t *testing.T) {
	t.Parallel()
	t.Run("debug-overrides", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := SetupLogging(&buf, true, &Config{LogLevel: "error"})
		require.NoError(t, err)
		assert.True(t, l.IsDebug())
		l.Debug("loading store")
		assert.Contains(t, buf.String(), "loading store")
	})
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := SetupLogging(&buf, false, &Config{LogLevel: "warn", LogFormat: "json"})
		require.NoError(t, err)
		assert.False(t, l.IsDebug())
		l.Warn("lock contended")
		assert.Contains(t, buf.String(), `"@message":"lock contended"`)
	})
	t.Run("bad-level", func(t *testing.T) {
		_, err := SetupLogging(new(bytes.Buffer), false, &Config{LogLevel: "loud"})
		require.Error(t, err)
	})
}
