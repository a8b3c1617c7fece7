package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Goal boxes, links and progress all draw from these.
var (
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	StyleFg     = fg(ColorFg)
	StyleDim    = fg(ColorDim)
	StyleRed    = fg(ColorRed)
	StyleYellow = fg(ColorYellow)
	StyleGreen  = fg(ColorGreen)
	StyleBlue   = fg(ColorBlue)
	StylePurple = fg(ColorPurple)
	StyleBold   = StyleFg.Bold(true)
	StyleHeader = fg(ColorHeader).Bold(true)
)

// progressBands maps the lower bound of each progress band to its style,
// highest first.
var progressBands = []struct {
	from  int
	style lipgloss.Style
}{
	{66, StyleGreen},
	{33, StyleYellow},
	{0, StyleRed},
}

// ProgressStyle picks the color for a completion percentage.
func ProgressStyle(progress int) lipgloss.Style {
	for _, b := range progressBands {
		if progress >= b.from {
			return b.style
		}
	}
	return StyleRed
}

// Header upper-cases text and underlines it.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return StyleHeader.Render(title) + "\n" + StyleDim.Render(rule)
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }
