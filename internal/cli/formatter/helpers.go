package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content, putting an upper-cased title above it when one
// is given.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// shortIDLen is how many ID characters the CLI prints. It is enough to pass
// back as an ID prefix.
const shortIDLen = 8

func TruncID(id string) string {
	return StyleDim.Render(id[:min(len(id), shortIDLen)])
}

const dateLayout = "Jan 2, 2006"

// HumanTimestampFrom describes t relative to now for anything under a day
// old and prints the date otherwise.
func HumanTimestampFrom(t, now time.Time) string {
	age := now.Sub(t)
	if age < 0 || age >= 24*time.Hour {
		return t.Format(dateLayout)
	}
	if age < time.Minute {
		return "Just now"
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm ago", int(age/time.Minute))
	}
	return fmt.Sprintf("%dh ago", int(age/time.Hour))
}

// Truncate shortens s to at most width cells, ending in "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// WrapText word-wraps each paragraph of text to width display cells. Blank
// lines are kept; words longer than width stay on their own line.
func WrapText(text string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(text)
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(current)+1+lipgloss.Width(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}
