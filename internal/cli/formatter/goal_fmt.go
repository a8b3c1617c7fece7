package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/layout"
)

// NoURLMessage is shown when a goal has no link to open.
const NoURLMessage = "No URL provided."

const descriptionWidth = 64

// GoalBadges summarizes a goal's date and whether it has a link or notes.
func GoalBadges(date string, hasURL, hasNotes bool) string {
	var parts []string
	if date != "" {
		parts = append(parts, date)
	}
	if hasURL {
		parts = append(parts, "link")
	}
	if hasNotes {
		parts = append(parts, "notes")
	}
	return strings.Join(parts, " · ")
}

// FormatGoalTree renders the whole tree with connectors, progress bars and
// badges. IDs are prefixed when showIDs is set.
func FormatGoalTree(tree *domain.Tree, showIDs bool) string {
	var items []TreeItem
	var visit func(g *domain.Goal, path []bool)
	visit = func(g *domain.Goal, path []bool) {
		item := TreeItem{
			Path:     path,
			Title:    g.Name,
			Progress: g.Progress(),
			Detail:   GoalBadges(g.Date, g.URL != "", g.Description != ""),
		}
		if showIDs {
			item.ID = g.ID
		}
		items = append(items, item)

		kids := g.Children()
		for i, c := range kids {
			visit(c, append(slices.Clone(path), i == len(kids)-1))
		}
	}
	visit(tree.Root(), nil)
	return RenderTree(items)
}

// FormatGoalDetail renders one goal's fields in a box.
func FormatGoalDetail(tree *domain.Tree, g *domain.Goal) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-9s", label)), value)
	}

	row("ID", g.ID)
	if parent := tree.Parent(g); parent != nil {
		row("Parent", parent.Name)
	} else {
		row("Parent", Dim("(root)"))
	}
	row("Date", valueOrDash(g.Date))
	row("Progress", RenderProgress(g.Progress(), 20))
	if g.URL != "" {
		row("URL", StyleBlue.Render(g.URL))
	} else {
		row("URL", Dim(NoURLMessage))
	}
	row("Children", fmt.Sprintf("%d", g.ChildCount()))
	if g.Description != "" {
		b.WriteString("\n" + WrapText(g.Description, descriptionWidth) + "\n")
	}
	return RenderBox(g.Name, strings.TrimRight(b.String(), "\n"))
}

// FormatLayout lists every laid-out box in draw order.
func FormatLayout(scene layout.Scene) string {
	cols := []Column{
		{Title: "ID"},
		{Title: "GOAL"},
		{Title: "X", Right: true},
		{Title: "Y", Right: true},
		{Title: "W", Right: true},
		{Title: "H", Right: true},
	}
	rows := make([][]string, 0, len(scene.Nodes))
	for _, n := range scene.Nodes {
		rows = append(rows, []string{
			TruncID(n.ID),
			strings.Repeat("  ", n.Depth) + n.Name,
			formatCoord(n.Box.X),
			formatCoord(n.Box.Y),
			formatCoord(n.Box.Width),
			formatCoord(n.Box.Height),
		})
	}
	b := scene.Bounds
	footer := Dim(fmt.Sprintf("bounds: x %s..%s  y %s..%s",
		formatCoord(b.X), formatCoord(b.X+b.Width), formatCoord(b.Y), formatCoord(b.Y+b.Height)))
	return RenderTable(cols, rows) + footer + "\n"
}

// FormatHit reports the result of a point hit-test.
func FormatHit(x, y float64, g *domain.Goal) string {
	at := fmt.Sprintf("(%s, %s)", formatCoord(x), formatCoord(y))
	if g == nil {
		return Dim("No goal at " + at)
	}
	return fmt.Sprintf("%s %s %s", at, Bold(g.Name), TruncID(g.ID))
}

func formatCoord(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func valueOrDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
