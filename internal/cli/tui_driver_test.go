package cli

import (
	"context"
	"regexp"
	"testing"

	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver opens the default timeline of app in a 120x40 editor.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	tree, err := app.Timelines.Open(context.Background(), domain.DefaultTimelineName)
	require.NoError(t, err)

	m := newAppModel(app, domain.DefaultTimelineName, tree)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// Selected returns the name of the selected goal.
func (d *TestDriver) Selected() string {
	return d.State().Ctrl.Selected().Name
}

// ClickCanvas clicks the canvas cell (col, row), below the header.
func (d *TestDriver) ClickCanvas(col, row int) {
	d.T.Helper()
	d.Click(col, row+headerRows)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// PlainView returns the rendering with ANSI styling removed.
func (d *TestDriver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}
