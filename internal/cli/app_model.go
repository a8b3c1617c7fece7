package cli

import (
	"strings"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var quitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

// appModel is the root bubbletea Model of the canvas editor. It owns the
// view stack and draws the header and status bar around the active view.
type appModel struct {
	state     *SharedState
	viewStack []View
	help      help.Model
	quitting  bool

	// quitArmed is set after q was pressed with unsaved changes; a second q
	// quits anyway.
	quitArmed bool
}

func newAppModel(app *App, timeline string, tree *domain.Tree) appModel {
	state := newSharedState(app, timeline, tree)

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.ShortSeparator = formatter.StyleDim

	return appModel{
		state:     state,
		viewStack: []View{newCanvasView(state)},
		help:      h,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) popView() {
	if len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.state.clearStatus()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.popView()
		return m, nil

	case formDoneMsg:
		m.popView()
		return m, msg.nextCmd

	case statusMsg:
		m.state.setStatus(msg.text, msg.isErr)
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		return m.forward(msg)
	}

	m.state.clearStatus()
	armed := m.quitArmed
	m.quitArmed = false

	switch {
	case key.Matches(msg, quitKey):
		if m.state.Ctrl.Dirty() && !armed {
			m.quitArmed = true
			m.state.setStatus("Unsaved changes. Press s to save or q again to quit.", true)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.popView()
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	content := ""
	if v := m.activeView(); v != nil {
		content = v.View()
	}
	// Keep the footer on the last rows whatever the view rendered.
	if h := m.state.ContentHeight(); m.state.Height > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > h {
			lines = lines[:h]
		}
		for len(lines) < h {
			lines = append(lines, "")
		}
		content = strings.Join(lines, "\n")
	}
	sections = append(sections, content)
	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("lifemap")

	crumbs := []string{m.state.Timeline}
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title + " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	if m.state.Ctrl.Dirty() {
		header += " " + formatter.StyleYellow.Render("●")
	}

	f := m.state.Fields
	selected := formatter.Bold(f.Name) + " " + formatter.RenderProgress(f.Progress, 10)
	if badges := formatter.GoalBadges(f.Date, f.URL != "", f.Description != ""); badges != "" {
		selected += " " + formatter.Dim(badges)
	}
	header += "  " + formatter.Dim("[") + selected + formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))

	if m.state.Status != "" {
		style := formatter.StyleGreen
		if m.state.StatusErr {
			style = formatter.StyleRed
		}
		return sep + "\n" + style.Render(m.state.Status)
	}

	var bindings []key.Binding
	if v := m.activeView(); v != nil {
		bindings = append(bindings, v.ShortHelp()...)
	}
	if v := m.activeView(); v == nil || v.ID() != ViewForm {
		bindings = append(bindings, quitKey)
	}
	return sep + "\n" + m.help.ShortHelpView(bindings)
}
