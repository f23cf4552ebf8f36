// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"github.com/ryanuber/columnize"
)

// ColumnOutput prints the list of items as a table with no headers. Columns
// within an item are separated by "|".
func ColumnOutput(list []string, c *columnize.Config) string {
	if len(list) == 0 {
		return ""
	}

	if c == nil {
		c = &columnize.Config{}
	}
	if c.Glue == "" {
		c.Glue = "    "
	}

	return columnize.Format(list, c)
}
