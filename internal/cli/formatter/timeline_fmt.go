package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lifemap/internal/service"
)

// FormatTimelineList renders the stored timelines, marking active.
func FormatTimelineList(list []service.TimelineSummary, active string, now time.Time) string {
	if len(list) == 0 {
		return Dim("No timelines yet. Create one with: lifemap timeline new NAME") + "\n"
	}
	cols := []Column{
		{Title: ""},
		{Title: "NAME"},
		{Title: "GOALS", Right: true},
		{Title: "PROGRESS"},
		{Title: "UPDATED"},
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		marker := " "
		name := s.Name
		if s.Name == active {
			marker = StyleGreen.Render("●")
			name = Bold(name)
		}
		rows = append(rows, []string{
			marker,
			name,
			fmt.Sprintf("%d", s.GoalCount),
			RenderProgress(int(s.AverageProgress+0.5), 10),
			Dim(HumanTimestampFrom(s.UpdatedAt, now)),
		})
	}
	return RenderTable(cols, rows)
}
