package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// lifeTree builds My Life -> [Career -> [Promotion], Health].
func lifeTree(t *testing.T) *domain.Tree {
	t.Helper()
	tree := domain.NewTree(domain.DefaultRootName)
	career := domain.NewGoal("Career")
	promotion := domain.NewGoal("Promotion")
	promotion.Date = "2026-01-01"
	promotion.SetProgress(40)
	health := domain.NewGoal("Health")
	health.URL = "https://example.com"
	health.Description = "run"
	health.SetProgress(100)
	require.NoError(t, tree.Root().AppendChild(career))
	require.NoError(t, tree.Root().AppendChild(health))
	require.NoError(t, career.AppendChild(promotion))
	return tree
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		width    int
		want     string
	}{
		{"partial", 45, 10, "[████░░░░░░]  45%"},
		{"empty", 0, 4, "[░░░░]   0%"},
		{"full", 100, 4, "[████] 100%"},
		{"over clamps", 150, 4, "[████] 100%"},
		{"negative clamps", -5, 4, "[░░░░]   0%"},
		{"tiny width clamps to 2", 50, 1, "[█░]  50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.progress, tt.width)))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	assert.Equal(t, "██░░", RenderCompactBar(50, 4))
	assert.Equal(t, "", RenderCompactBar(50, 0))
	assert.NotContains(t, RenderCompactBar(50, 8), "%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]Column{{Title: "NAME"}, {Title: "N", Right: true}},
		[][]string{{"alpha", "1"}, {"b", "100"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME     N", lines[0])
	assert.Equal(t, "─────  ───", lines[1])
	assert.Equal(t, "alpha    1", lines[2])
	assert.Equal(t, "b      100", lines[3])
}

func TestFormatGoalTree(t *testing.T) {
	out := stripANSI(FormatGoalTree(lifeTree(t), false))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "My Life"))
	assert.True(t, strings.HasPrefix(lines[1], "├─ Career"))
	assert.True(t, strings.HasPrefix(lines[2], "│  └─ Promotion"))
	assert.True(t, strings.HasPrefix(lines[3], "└─ ✔ Health"))

	assert.Contains(t, lines[2], "40%")
	assert.Contains(t, lines[2], "[ 2026-01-01 ]")
	assert.Contains(t, lines[3], "[ link · notes ]")

	// Progress bars line up.
	barCol := func(line string) int {
		return lipgloss.Width(line[:strings.Index(line, "[")])
	}
	for _, l := range lines[1:] {
		assert.Equal(t, barCol(lines[0]), barCol(l))
	}
}

func TestFormatGoalTree_LastBranchHasNoPipe(t *testing.T) {
	tree := domain.NewTree("root")
	a := domain.NewGoal("a")
	b := domain.NewGoal("b")
	require.NoError(t, tree.Root().AppendChild(a))
	require.NoError(t, a.AppendChild(b))

	lines := strings.Split(stripANSI(FormatGoalTree(tree, true)), "\n")
	assert.Contains(t, lines[1], "└─ ")
	assert.Contains(t, lines[2], "   └─ ")
	assert.NotContains(t, lines[2], "│")
	assert.Contains(t, lines[1], a.ID[:8], "IDs shown")
}

func TestFormatGoalDetail(t *testing.T) {
	tree := lifeTree(t)
	career := tree.Root().Children()[0]

	out := stripANSI(FormatGoalDetail(tree, career))
	assert.Contains(t, out, "CAREER")
	assert.Contains(t, out, "My Life")
	assert.Contains(t, out, NoURLMessage)
	assert.Contains(t, out, career.ID)

	health := tree.Root().Children()[1]
	out = stripANSI(FormatGoalDetail(tree, health))
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "run")

	out = stripANSI(FormatGoalDetail(tree, tree.Root()))
	assert.Contains(t, out, "(root)")
}

func TestFormatTimelineList(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := stripANSI(FormatTimelineList([]service.TimelineSummary{
		{Name: "career", GoalCount: 4, AverageProgress: 12.5, UpdatedAt: now.Add(-5 * time.Minute)},
		{Name: "default", GoalCount: 1, UpdatedAt: now.Add(-48 * time.Hour)},
	}, "default", now))

	assert.Contains(t, out, "career")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "Feb 27, 2026")
	assert.Contains(t, out, "●")

	assert.Contains(t, stripANSI(FormatTimelineList(nil, "default", now)), "No timelines yet")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 2, 2026", HumanTimestampFrom(now.Add(24*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab…", Truncate("abcd", 3))
	assert.Equal(t, "…", Truncate("abcd", 1))
	assert.Equal(t, "", Truncate("abcd", 0))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "run a\nmarathon\n\nthen rest", WrapText("run a marathon\n\nthen   rest", 9))
	assert.Equal(t, "supercalifragilistic\nok", WrapText("supercalifragilistic ok", 5))
	assert.Equal(t, "trimmed", WrapText("  trimmed  ", 0))
}

func TestBranchPrefix(t *testing.T) {
	assert.Equal(t, "", BranchPrefix(nil))
	assert.Equal(t, "├─ ", BranchPrefix([]bool{false}))
	assert.Equal(t, "│  └─ ", BranchPrefix([]bool{false, true}))
	assert.Equal(t, "   │  ├─ ", BranchPrefix([]bool{true, false, false}))
}
