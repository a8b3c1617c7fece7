package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Pan step in cells.
const (
	panCols = 4
	panRows = 2
)

type canvasKeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Open   key.Binding
	Save   key.Binding
	Reload key.Binding
	Fit    key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

func newCanvasKeyMap() canvasKeyMap {
	return canvasKeyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		Save:   key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Fit:    key.NewBinding(key.WithKeys("f", "home"), key.WithHelp("f", "fit")),
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←↓↑→", "pan")),
	}
}

// reloadedMsg carries a tree freshly read from the store.
type reloadedMsg struct {
	tree *domain.Tree
	err  error
}

// canvasView draws the laid-out tree and turns clicks and keys into
// controller calls.
type canvasView struct {
	state *SharedState
	keys  canvasKeyMap

	// pending is the goal the delete prompt was raised for. While it is set
	// the canvas ignores the mouse and the next key answers the prompt.
	pending *domain.Goal
}

func newCanvasView(state *SharedState) *canvasView {
	return &canvasView{state: state, keys: newCanvasKeyMap()}
}

func (v *canvasView) Init() tea.Cmd { return nil }

func (v *canvasView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if v.pending != nil {
			return v, nil
		}
		return v, v.handleMouse(msg)
	case tea.KeyMsg:
		if v.pending != nil {
			return v, v.finishDelete(msg.String() == "y" || msg.String() == "Y")
		}
		return v, v.handleKey(msg)
	case reloadedMsg:
		if msg.err != nil {
			return v, errorCmd(msg.err)
		}
		v.state.Ctrl.Replace(msg.tree)
		v.state.Fit()
		return v, statusCmd(fmt.Sprintf("Reloaded %s (%d goals)", v.state.Timeline, msg.tree.Len()))
	}
	return v, nil
}

func (v *canvasView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.state.Viewport = v.state.Viewport.Pan(0, -1)
	case tea.MouseButtonWheelDown:
		v.state.Viewport = v.state.Viewport.Pan(0, 1)
	case tea.MouseButtonLeft:
		col, row := msg.X, msg.Y-headerRows
		vp := v.state.Viewport
		if col < 0 || col >= vp.Cols || row < 0 || row >= vp.Rows {
			return nil
		}
		x, y := vp.CellCenter(col, row)
		v.state.Ctrl.SelectAt(x, y)
	}
	return nil
}

func (v *canvasView) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctrl := v.state.Ctrl
	switch {
	case key.Matches(msg, v.keys.Add):
		child := ctrl.AddChild()
		if child == nil {
			return nil
		}
		return statusCmd(fmt.Sprintf("Added %q under %s", child.Name, ctrl.Selected().Name))

	case key.Matches(msg, v.keys.Edit):
		return v.startEdit()

	case key.Matches(msg, v.keys.Delete):
		if ctrl.IsRootSelected() {
			return errorCmd(domain.ErrProtectedNode)
		}
		v.pending = ctrl.Selected()
		return statusCmd(editor.DeletePrompt + " (y/N)")

	case key.Matches(msg, v.keys.Open):
		err := ctrl.OpenLink()
		switch {
		case errors.Is(err, domain.ErrNoLink):
			return statusCmd(formatter.NoURLMessage)
		case err != nil:
			return errorCmd(err)
		}
		return statusCmd("Opening " + ctrl.Selected().URL)

	case key.Matches(msg, v.keys.Save):
		return v.save()

	case key.Matches(msg, v.keys.Reload):
		return v.reload()

	case key.Matches(msg, v.keys.Fit):
		v.state.Fit()
	case key.Matches(msg, v.keys.Up):
		v.state.Viewport = v.state.Viewport.Pan(0, -panRows)
	case key.Matches(msg, v.keys.Down):
		v.state.Viewport = v.state.Viewport.Pan(0, panRows)
	case key.Matches(msg, v.keys.Left):
		v.state.Viewport = v.state.Viewport.Pan(-panCols, 0)
	case key.Matches(msg, v.keys.Right):
		v.state.Viewport = v.state.Viewport.Pan(panCols, 0)
	}
	return nil
}

func (v *canvasView) save() tea.Cmd {
	ctrl := v.state.Ctrl
	if v.state.File != "" {
		written, err := ctrl.SaveFile(v.state.File)
		if err != nil {
			return errorCmd(err)
		}
		v.state.File = written
		return statusCmd("Saved " + written)
	}
	if err := v.state.App.Timelines.Save(context.Background(), v.state.Timeline, ctrl.Tree()); err != nil {
		return errorCmd(err)
	}
	ctrl.MarkClean()
	return statusCmd("Saved " + v.state.Timeline)
}

// reload discards unsaved edits. A document that fails to parse leaves the
// canvas as it was.
func (v *canvasView) reload() tea.Cmd {
	if file := v.state.File; file != "" {
		if err := v.state.Ctrl.LoadFile(file); err != nil {
			return errorCmd(err)
		}
		v.state.Fit()
		return statusCmd(fmt.Sprintf("Reloaded %s (%d goals)", file, v.state.Ctrl.Tree().Len()))
	}
	app, name := v.state.App, v.state.Timeline
	return func() tea.Msg {
		tree, err := app.Timelines.Open(context.Background(), name)
		return reloadedMsg{tree: tree, err: err}
	}
}

func (v *canvasView) finishDelete(approved bool) tea.Cmd {
	target := v.pending
	v.pending = nil
	if !approved {
		return statusCmd("Cancelled.")
	}
	ctrl := v.state.Ctrl
	if ctrl.Selected() != target {
		if err := ctrl.Select(target); err != nil {
			return errorCmd(err)
		}
	}
	removed, err := ctrl.DeleteSelected(editor.AlwaysConfirm)
	if err != nil {
		return errorCmd(err)
	}
	if !removed {
		return nil
	}
	return statusCmd(fmt.Sprintf("Deleted %q and its sub-goals", target.Name))
}

func (v *canvasView) startEdit() tea.Cmd {
	values := newGoalFormValues(v.state.Fields)
	state := v.state
	done := func() tea.Cmd {
		return applyGoalForm(state, values)
	}
	return pushView(newFormView("Edit "+v.state.Fields.Name, goalEditForm(values), done))
}

// applyGoalForm writes submitted form values to the selected goal.
func applyGoalForm(state *SharedState, values *goalFormValues) tea.Cmd {
	if err := validateProgress(values.Progress); err != nil {
		return errorCmd(err)
	}
	if err := validateRequired("name")(values.Name); err != nil {
		return errorCmd(err)
	}
	state.Ctrl.ApplyEdits(values.fields())
	state.SelectionChanged(state.Ctrl.Selected())
	return statusCmd("Updated " + state.Ctrl.Selected().Name)
}

func (v *canvasView) View() string {
	return formatter.RenderCanvas(v.state.Ctrl.Scene(), v.state.Viewport)
}

func (v *canvasView) ID() ViewID    { return ViewCanvas }
func (v *canvasView) Title() string { return "" }
func (v *canvasView) ShortHelp() []key.Binding {
	return []key.Binding{
		v.keys.Add, v.keys.Edit, v.keys.Delete, v.keys.Open,
		v.keys.Save, v.keys.Reload, v.keys.Fit, v.keys.Right,
	}
}
