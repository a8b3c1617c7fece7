package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a rendered tree.
type TreeItem struct {
	// Path records, for every level from the first child level down to
	// this item, whether the node at that level is its parent's last child.
	// The root has an empty path.
	Path     []bool
	Title    string
	ID       string
	Progress int
	Detail   string
}

// BranchPrefix draws the connector column for an item at path.
func BranchPrefix(path []bool) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, last := range path[:len(path)-1] {
		if last {
			b.WriteString("   ")
		} else {
			b.WriteString("│  ")
		}
	}
	if path[len(path)-1] {
		b.WriteString("└─ ")
	} else {
		b.WriteString("├─ ")
	}
	return b.String()
}

func (it TreeItem) label() string {
	s := StyleDim.Render(BranchPrefix(it.Path))
	if it.Progress >= 100 {
		s += StyleGreen.Render("✔ ")
	}
	if it.ID != "" {
		s += TruncID(it.ID) + " "
	}
	return s + it.Title
}

func (it TreeItem) trailer() string {
	s := RenderProgress(it.Progress, 10)
	if it.Detail != "" {
		s += "  " + StyleBlue.Render("[ "+it.Detail+" ]")
	}
	return s
}

// RenderTree draws items one per line with their progress bars lined up in
// a single column.
func RenderTree(items []TreeItem) string {
	labels := make([]string, len(items))
	width := 0
	for i, it := range items {
		labels[i] = it.label()
		width = max(width, lipgloss.Width(labels[i]))
	}

	var b strings.Builder
	for i, it := range items {
		b.WriteString(labels[i])
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(labels[i])+2))
		b.WriteString(it.trailer())
		b.WriteByte('\n')
	}
	return b.String()
}
