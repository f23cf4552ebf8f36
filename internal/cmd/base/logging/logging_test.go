// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    LogFormat
		wantErr bool
	}{
		{in: "", want: UnspecifiedFormat},
		{in: "  ", want: UnspecifiedFormat},
		{in: "standard", want: StandardFormat},
		{in: "JSON", want: JSONFormat},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogFormat_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "json", JSONFormat.String())
	assert.Equal(t, "standard", StandardFormat.String())
	assert.Equal(t, "unspecified", UnspecifiedFormat.String())
}
