package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// Viewport maps canvas coordinates onto a grid of terminal cells. Cell
// (col, row) covers the canvas rectangle starting at
// (OffsetX + col*CellWidth, OffsetY + row*CellHeight).
type Viewport struct {
	OffsetX    float64
	OffsetY    float64
	CellWidth  float64
	CellHeight float64
	Cols       int
	Rows       int
}

// FitViewport positions a viewport so that bounds starts one cell in from the
// top-left corner.
func FitViewport(bounds domain.Box, cellW, cellH float64, cols, rows int) Viewport {
	return Viewport{
		OffsetX:    bounds.X - cellW,
		OffsetY:    bounds.Y - cellH,
		CellWidth:  cellW,
		CellHeight: cellH,
		Cols:       cols,
		Rows:       rows,
	}
}

// CellCenter returns the canvas point at the middle of a cell. Pointer input
// is resolved at cell centers, which is also what decides whether a cell is
// drawn as part of a box.
func (v Viewport) CellCenter(col, row int) (float64, float64) {
	return v.OffsetX + (float64(col)+0.5)*v.CellWidth,
		v.OffsetY + (float64(row)+0.5)*v.CellHeight
}

// Pan shifts the viewport by whole cells.
func (v Viewport) Pan(dCols, dRows int) Viewport {
	v.OffsetX += float64(dCols) * v.CellWidth
	v.OffsetY += float64(dRows) * v.CellHeight
	return v
}

// first and last cell whose center lies within [lo, hi] along one axis.
func firstCell(lo, offset, size float64) int {
	return int(math.Ceil((lo-offset)/size - 0.5))
}

func lastCell(hi, offset, size float64) int {
	return int(math.Floor((hi-offset)/size - 0.5))
}

func cellOf(v, offset, size float64) int {
	return int(math.Floor((v - offset) / size))
}

type cellClass uint8

const (
	clsBlank cellClass = iota
	clsEdge
	clsBorder
	clsSelBorder
	clsText
	clsSelText
	clsBarFill
	clsBarEmpty
	clsBadge
)

const (
	linkUp uint8 = 1 << iota
	linkDown
	linkLeft
	linkRight
)

type canvasCell struct {
	r        rune
	links    uint8
	cls      cellClass
	progress int
}

type canvasGrid struct {
	cells      [][]canvasCell
	cols, rows int
}

func newCanvasGrid(cols, rows int) *canvasGrid {
	g := &canvasGrid{cols: cols, rows: rows, cells: make([][]canvasCell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]canvasCell, cols)
	}
	return g
}

func (g *canvasGrid) in(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *canvasGrid) put(col, row int, r rune, cls cellClass) {
	if g.in(col, row) {
		g.cells[row][col] = canvasCell{r: r, cls: cls}
	}
}

func (g *canvasGrid) putProgress(col, row int, r rune, cls cellClass, progress int) {
	if g.in(col, row) {
		g.cells[row][col] = canvasCell{r: r, cls: cls, progress: progress}
	}
}

func (g *canvasGrid) link(col, row int, bits uint8) {
	if g.in(col, row) && g.cells[row][col].r == 0 {
		c := &g.cells[row][col]
		c.links |= bits
		c.cls = clsEdge
	}
}

func (g *canvasGrid) text(col, row int, s string, width int, cls cellClass) {
	for i, r := range []rune(Truncate(s, width)) {
		g.put(col+i, row, r, cls)
	}
}

func (g *canvasGrid) hline(row, c0, c1 int) {
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	for c := c0; c <= c1; c++ {
		var bits uint8
		if c > c0 {
			bits |= linkLeft
		}
		if c < c1 {
			bits |= linkRight
		}
		g.link(c, row, bits)
	}
}

func (g *canvasGrid) vline(col, r0, r1 int) {
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for r := r0; r <= r1; r++ {
		var bits uint8
		if r > r0 {
			bits |= linkUp
		}
		if r < r1 {
			bits |= linkDown
		}
		g.link(col, r, bits)
	}
}

var linkRunes = map[uint8]rune{
	linkLeft:                                 '─',
	linkRight:                                '─',
	linkLeft | linkRight:                     '─',
	linkUp:                                   '│',
	linkDown:                                 '│',
	linkUp | linkDown:                        '│',
	linkDown | linkRight:                     '┌',
	linkDown | linkLeft:                      '┐',
	linkUp | linkRight:                       '└',
	linkUp | linkLeft:                        '┘',
	linkUp | linkDown | linkRight:            '├',
	linkUp | linkDown | linkLeft:             '┤',
	linkLeft | linkRight | linkDown:          '┬',
	linkLeft | linkRight | linkUp:            '┴',
	linkUp | linkDown | linkLeft | linkRight: '┼',
}

type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var (
	plainBorder    = borderSet{'╭', '╮', '╰', '╯', '─', '│'}
	selectedBorder = borderSet{'┏', '┓', '┗', '┛', '━', '┃'}
)

// RenderCanvas draws scene into a Cols x Rows block of text: boxes with
// name, progress bar and badges, joined by elbow connectors. The selected
// goal gets a heavy border.
func RenderCanvas(scene layout.Scene, vp Viewport) string {
	if vp.Cols <= 0 || vp.Rows <= 0 || vp.CellWidth <= 0 || vp.CellHeight <= 0 {
		return ""
	}
	g := newCanvasGrid(vp.Cols, vp.Rows)

	for _, e := range scene.Edges {
		drawEdge(g, vp, e)
	}
	for _, n := range scene.Nodes {
		drawNode(g, vp, n)
	}
	return g.render()
}

func drawEdge(g *canvasGrid, vp Viewport, e layout.Edge) {
	fromRow := cellOf(e.From.Y, vp.OffsetY, vp.CellHeight)
	toRow := cellOf(e.To.Y, vp.OffsetY, vp.CellHeight)
	startCol := lastCell(e.From.X, vp.OffsetX, vp.CellWidth) + 1
	endCol := firstCell(e.To.X, vp.OffsetX, vp.CellWidth) - 1
	elbowCol := cellOf(e.Elbow(), vp.OffsetX, vp.CellWidth)
	elbowCol = min(max(elbowCol, startCol), endCol)

	g.hline(fromRow, startCol, elbowCol)
	g.vline(elbowCol, fromRow, toRow)
	g.hline(toRow, elbowCol, endCol)
	// Line ends touch box sides.
	g.link(startCol, fromRow, linkLeft)
	g.link(endCol, toRow, linkRight)
}

func drawNode(g *canvasGrid, vp Viewport, n layout.NodeView) {
	c0 := firstCell(n.Box.X, vp.OffsetX, vp.CellWidth)
	c1 := lastCell(n.Box.X+n.Box.Width, vp.OffsetX, vp.CellWidth)
	r0 := firstCell(n.Box.Y, vp.OffsetY, vp.CellHeight)
	r1 := lastCell(n.Box.Y+n.Box.Height, vp.OffsetY, vp.CellHeight)

	textCls, borderCls, border := clsText, clsBorder, plainBorder
	if n.Selected {
		textCls, borderCls, border = clsSelText, clsSelBorder, selectedBorder
	}

	width := c1 - c0 + 1
	if width < 1 || r1 < r0 {
		cx := cellOf(n.Box.X+n.Box.Width/2, vp.OffsetX, vp.CellWidth)
		cy := cellOf(n.Box.Y+n.Box.Height/2, vp.OffsetY, vp.CellHeight)
		g.put(cx, cy, '•', textCls)
		return
	}

	if r1-r0 < 2 || width < 6 {
		// Too small for a border: one line of text.
		label := fmt.Sprintf("[%s %d%%]", n.Name, n.Progress)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				g.put(c, r, ' ', textCls)
			}
		}
		g.text(c0, r0, label, width, textCls)
		return
	}

	for c := c0 + 1; c < c1; c++ {
		g.put(c, r0, border.h, borderCls)
		g.put(c, r1, border.h, borderCls)
	}
	for r := r0 + 1; r < r1; r++ {
		g.put(c0, r, border.v, borderCls)
		g.put(c1, r, border.v, borderCls)
		for c := c0 + 1; c < c1; c++ {
			g.put(c, r, ' ', textCls)
		}
	}
	g.put(c0, r0, border.tl, borderCls)
	g.put(c1, r0, border.tr, borderCls)
	g.put(c0, r1, border.bl, borderCls)
	g.put(c1, r1, border.br, borderCls)

	inner := width - 4
	g.text(c0+2, r0, " "+n.Name+" ", inner, textCls)

	// Progress row; a date row above it when there is room.
	barRow := r1 - 1
	if barRow-1 > r0 && n.Date != "" {
		g.text(c0+2, r0+1, n.Date, inner, textCls)
	}
	pct := fmt.Sprintf(" %d%%", n.Progress)
	barWidth := inner - len(pct)
	if barWidth > 0 {
		for i, r := range []rune(RenderCompactBar(n.Progress, barWidth)) {
			cls := clsBarFill
			if string(r) == emptyBlock {
				cls = clsBarEmpty
			}
			g.putProgress(c0+2+i, barRow, r, cls, n.Progress)
		}
		g.text(c0+2+barWidth, barRow, pct, len(pct), textCls)
	} else {
		g.text(c0+2, barRow, strings.TrimSpace(pct), inner, textCls)
	}

	var badges []string
	if n.Date != "" && barRow-1 <= r0 {
		badges = append(badges, n.Date)
	}
	if n.HasURL {
		badges = append(badges, "@")
	}
	if n.HasDescription {
		badges = append(badges, "≡")
	}
	if len(badges) > 0 {
		g.text(c0+2, r1, " "+strings.Join(badges, " ")+" ", inner, clsBadge)
	}
}

func (g *canvasGrid) render() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		var run strings.Builder
		runCls, runProgress := clsBlank, 0
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styleFor(runCls, runProgress).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < g.cols; col++ {
			c := g.cells[row][col]
			r := c.r
			if r == 0 {
				r = ' '
				if c.links != 0 {
					r = linkRunes[c.links]
				}
			}
			if c.cls != runCls || c.progress != runProgress {
				flush()
				runCls, runProgress = c.cls, c.progress
			}
			run.WriteRune(r)
		}
		flush()
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var plainStyle = lipgloss.NewStyle()

func styleFor(cls cellClass, progress int) lipgloss.Style {
	switch cls {
	case clsEdge:
		return StyleDim
	case clsBorder:
		return StyleFg
	case clsSelBorder:
		return StyleHeader
	case clsText:
		return StyleFg
	case clsSelText:
		return StyleBold
	case clsBarFill:
		return ProgressStyle(progress)
	case clsBarEmpty:
		return StyleDim
	case clsBadge:
		return StyleBlue
	default:
		return plainStyle
	}
}
