// Package table renders rows as a terminal table with lipgloss
package table

import (
	"fmt"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is a source of rows
type Data interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cells of row i, formatted with Cell
	Row(i int) []any
}

// Bytes is a size which renders in KB, MB or GB
type Bytes int64

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

const (
	empty = "-"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table as a string. When width is positive, the
// table is wrapped to fit.
func Render(data Data, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i := range data.Len() {
		row := data.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Cell(v)
		}
		t.Row(cells...)
	}

	// Only constrain the width when the natural render is wider
	result := t.Render()
	if width > 0 && widest(result) > width {
		result = t.Width(width).Render()
	}
	return result
}

// Cell formats a value for display, with a dash for empty values
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return empty
	case string:
		if v = strings.TrimSpace(v); v == "" {
			return empty
		}
		return v
	case time.Time:
		if v.IsZero() {
			return empty
		}
		return v.Format("2006-01-02 15:04")
	case Bytes:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (b Bytes) String() string {
	const unit = 1024
	if b <= 0 {
		return empty
	} else if b < unit {
		return fmt.Sprintf("%d B", int64(b))
	}
	div, exp := int64(unit), 0
	for n := int64(b) / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func widest(text string) int {
	result := 0
	for _, line := range strings.Split(text, "\n") {
		result = max(result, lipgloss.Width(line))
	}
	return result
}
