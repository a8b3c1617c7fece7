package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var formKeys = struct {
	Next, Submit, Cancel key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// formView hosts a huh form on top of the canvas. It pops itself with
// formDoneMsg once the form is submitted or cancelled.
type formView struct {
	form     *huh.Form
	title    string
	onSubmit func() tea.Cmd
}

func newFormView(title string, form *huh.Form, onSubmit func() tea.Cmd) *formView {
	return &formView{form: form, title: title, onSubmit: onSubmit}
}

func (v *formView) Init() tea.Cmd { return v.form.Init() }

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, formKeys.Cancel) {
		return v, finish(statusCmd("Cancelled."))
	}

	next, cmd := v.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	var after tea.Cmd
	if v.onSubmit != nil {
		after = v.onSubmit()
	}
	return v, finish(after)
}

func finish(after tea.Cmd) tea.Cmd {
	return func() tea.Msg { return formDoneMsg{nextCmd: after} }
}

func (v *formView) View() string  { return v.form.View() }
func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.title }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{formKeys.Next, formKeys.Submit, formKeys.Cancel}
}
