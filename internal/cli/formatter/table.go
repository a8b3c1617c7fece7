package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column.
type Column struct {
	Title string
	Right bool // right-align cells, for numbers
}

// Cols is shorthand for left-aligned columns.
func Cols(titles ...string) []Column {
	cols := make([]Column, len(titles))
	for i, t := range titles {
		cols[i] = Column{Title: t}
	}
	return cols
}

// RenderTable renders an aligned table with a header separator line. Widths
// are measured on visible text, so styled cells line up.
func RenderTable(columns []Column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(columns) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	const colGap = 2
	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, c := range columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				cell = style(cell)
			}
			last := i == len(columns)-1
			switch {
			case c.Right:
				b.WriteString(pad + cell)
			case last:
				b.WriteString(cell)
			default:
				b.WriteString(cell + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	writeRow(titles, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
