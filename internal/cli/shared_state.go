package cli

import (
	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/editor"
)

// Screen rows taken by the header (title + separator) and the footer
// (separator + status or hints).
const (
	headerRows = 2
	footerRows = 2
)

// SharedState holds what every view needs, shared by pointer.
type SharedState struct {
	App      *App
	Timeline string
	Ctrl     *editor.Controller

	// File is set when editing a timeline document on disk rather than a
	// stored timeline. Save and reload then go to the file.
	File string

	// Fields mirrors the selected goal's editable values. The controller
	// refreshes it through SelectionChanged.
	Fields editor.Fields

	Viewport formatter.Viewport
	fitted   bool

	Status    string
	StatusErr bool

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App, timeline string, tree *domain.Tree) *SharedState {
	s := &SharedState{App: app, Timeline: timeline}
	s.Ctrl = editor.NewController(tree, app.Config.Layout,
		editor.WithSelectionListener(s),
		editor.WithLinkOpener(app.opener()),
	)
	s.SelectionChanged(s.Ctrl.Selected())
	s.Viewport = formatter.Viewport{
		CellWidth:  app.Config.Canvas.CellWidth,
		CellHeight: app.Config.Canvas.CellHeight,
	}
	return s
}

// SelectionChanged implements editor.SelectionListener.
func (s *SharedState) SelectionChanged(g *domain.Goal) {
	s.Fields = editor.FieldsOf(g)
}

// ContentHeight returns the rows left for the active view.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-headerRows-footerRows, 1)
}

// Resize matches the canvas viewport to the terminal. The first call also
// scrolls the tree into view.
func (s *SharedState) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Viewport.Cols = max(width, 1)
	s.Viewport.Rows = s.ContentHeight()
	if !s.fitted {
		s.Fit()
	}
}

// Fit moves the viewport back to the tree's top-left corner.
func (s *SharedState) Fit() {
	s.Viewport = formatter.FitViewport(s.Ctrl.Scene().Bounds,
		s.Viewport.CellWidth, s.Viewport.CellHeight, s.Viewport.Cols, s.Viewport.Rows)
	s.fitted = true
}

func (s *SharedState) setStatus(text string, isErr bool) {
	s.Status, s.StatusErr = text, isErr
}

func (s *SharedState) clearStatus() {
	s.Status, s.StatusErr = "", false
}
