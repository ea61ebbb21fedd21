package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a styled table
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	if len(cells) != len(t.headers) {
		return // Skip invalid rows
	}

	// Update column widths
	for i, cell := range cells {
		w := lipgloss.Width(cell)
		if w > t.widths[i] {
			t.widths[i] = w
		}
	}

	t.rows = append(t.rows, cells)
}

// Render renders the table with a clean, borderless style. Columns are
// sized to the widest cell and separated by a fixed gap.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	columnGap := 4

	for i, header := range t.headers {
		sb.WriteString(TableHeaderStyle.Render(header))
		if i < len(t.headers)-1 {
			padding := t.widths[i] - lipgloss.Width(header) + columnGap
			sb.WriteString(strings.Repeat(" ", padding))
		}
	}
	sb.WriteString("\n\n")

	for _, row := range t.rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				padding := t.widths[i] - lipgloss.Width(cell) + columnGap
				if padding > 0 {
					sb.WriteString(strings.Repeat(" ", padding))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// CreateStatusBadge creates a professional status indicator
func CreateStatusBadge(status string) string {
	status = strings.ToUpper(status)
	switch status {
	case "OK", "PACKED", "NORMALIZED", "SUCCESS":
		return SuccessBadge.Render(status)
	case "ERROR", "FAILED":
		return ErrorBadge.Render(status)
	case "SKIPPED", "WARNING", "PENDING":
		return WarningBadge.Render(status)
	default:
		return InfoBadge.Render(status)
	}
}
