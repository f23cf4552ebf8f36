// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package base

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders header and rows as a table. Rows may be ragged; every row,
// and the header, is padded with empty cells to the widest row. Cells are
// converted to strings, with nil rendered as an empty cell. Terminals get
// box drawing borders, other outputs plain ASCII.
func (m OutputMode) Table(header []string, rows [][]any) string {
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	head := make([]string, width)
	copy(head, header)
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, width)
		for i, v := range row {
			cells[i] = cellString(v)
		}
		body = append(body, cells)
	}

	r := m.renderer()
	border := lipgloss.ASCIIBorder()
	if m.Terminal {
		border = lipgloss.NormalBorder()
	}
	cell := r.NewStyle().Padding(0, 1)
	headerCell := cell
	if m.Color {
		headerCell = cell.Bold(true)
	}

	t := table.New().
		Border(border).
		BorderStyle(r.NewStyle()).
		Headers(head...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return cell
		})
	return t.String()
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
