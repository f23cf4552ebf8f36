// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapParagraphs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "indented-kept",
			in:   "Log in to a remote API,\n  and remember its\nlocation.",
			want: "Log in to a remote API,\n  and remember its\nlocation.",
		},
		{
			name: "reflows-paragraph",
			in:   "Log in to a remote API,\nand remember its\nlocation.",
			want: "Log in to a remote API, and remember its location.",
		},
		{
			name: "keeps-paragraphs",
			in:   "First paragraph.\n\n\nSecond\nparagraph.\n",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "preformatted",
			in:   "Examples:\n\n  maas login admin http://example.com/MAAS/\n  maas logout admin",
			want: "Examples:\n\n  maas login admin http://example.com/MAAS/\n  maas logout admin",
		},
		{
			name: "empty",
			in:   "\n\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapParagraphs(tt.in))
		})
	}
}

func TestWrapAtLengthWithPadding(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("word ", 30)
	got := WrapAtLengthWithPadding(long, 4)
	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "    "))
		assert.LessOrEqual(t, len(line), maxLineLength)
	}
	assert.Equal(t, "short", WrapAtLength("short"))
}

func TestTrimSpaceRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  a b", trimSpaceRight("  a b \t\n"))
	assert.Equal(t, "", trimSpaceRight(" \t"))
	assert.Equal(t, "ü", trimSpaceRight("ü "))
}
