package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation and status messages handled by appModel.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// statusMsg replaces the one-line status shown above the key hints.
type statusMsg struct {
	text  string
	isErr bool
}

// formDoneMsg pops the form view and then runs nextCmd.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
}
