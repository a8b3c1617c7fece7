package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/editor"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lifemapHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func lifemapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// huhConfirm asks a yes/no question on the terminal. The default answer is no.
func huhConfirm(prompt string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(lifemapHuhTheme()).WithShowHelp(false).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// goalFormValues backs the goal edit form. Progress is text so the input can
// validate it.
type goalFormValues struct {
	Name        string
	Date        string
	URL         string
	Progress    string
	Description string
}

func newGoalFormValues(f editor.Fields) *goalFormValues {
	return &goalFormValues{
		Name:        f.Name,
		Date:        f.Date,
		URL:         f.URL,
		Progress:    strconv.Itoa(f.Progress),
		Description: f.Description,
	}
}

// fields converts the form back. Call only after validation passed.
func (v *goalFormValues) fields() editor.Fields {
	p, _ := strconv.Atoi(strings.TrimSpace(v.Progress))
	return editor.Fields{
		Name:        strings.TrimSpace(v.Name),
		Date:        strings.TrimSpace(v.Date),
		URL:         strings.TrimSpace(v.URL),
		Progress:    p,
		Description: v.Description,
	}
}

// goalEditForm edits one goal's metadata.
func goalEditForm(v *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Date").
				Description("Free text, e.g. 2027 or \"before I'm 40\"").
				Value(&v.Date),
			huh.NewInput().
				Title("URL").
				Placeholder("https://").
				Value(&v.URL),
			huh.NewInput().
				Title("Progress (%)").
				Placeholder("0").
				Value(&v.Progress).
				Validate(validateProgress),
			huh.NewText().
				Title("Description").
				Value(&v.Description),
		),
	).WithTheme(lifemapHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateProgress accepts empty or any integer; out-of-range values are
// clamped when applied.
func validateProgress(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number from 0 to 100")
	}
	return nil
}
