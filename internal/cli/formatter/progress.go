package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// progressCells returns how many of width cells a 0..100 progress fills.
func progressCells(progress, width int) int {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress * width / 100
}

// RenderProgress renders a progress bar like [████░░░░]  45% for a 0..100
// completion value.
func RenderProgress(progress, width int) string {
	if width < 2 {
		width = 2
	}
	filled := progressCells(progress, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	shown := min(max(progress, 0), 100)
	return fmt.Sprintf("[%s] %3d%%", ProgressStyle(shown).Render(bar), shown)
}

// RenderCompactBar renders a bracketless bar for tight spaces such as canvas
// boxes.
func RenderCompactBar(progress, width int) string {
	if width < 1 {
		return ""
	}
	filled := progressCells(progress, width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}
