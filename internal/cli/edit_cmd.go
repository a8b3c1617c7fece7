package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/lifemap/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App, opts *rootOptions) *cobra.Command {
	cfg := &app.Config.Layout
	var file string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive canvas editor",
		Long: "Open the interactive canvas editor.\n\n" +
			"Click a goal to select it. a adds a child, e edits, d deletes,\n" +
			"o opens the goal's link, s saves, r reloads, arrows pan, q quits.\n" +
			"With --file the editor reads and writes that document directly.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the canvas editor needs an interactive terminal")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			m, err := newEditorModel(cmd.Context(), app, opts.timeline, file)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(appModel); ok && fm.state.Ctrl.Dirty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Quit with unsaved changes.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Edit a "+timeline.FileExtension+" document instead of a stored timeline")
	bindLayoutFlags(cmd.Flags(), cfg)
	return cmd
}

func newEditorModel(ctx context.Context, app *App, name, file string) (appModel, error) {
	if file == "" {
		tree, err := loadTimeline(ctx, app, name)
		if err != nil {
			return appModel{}, err
		}
		return newAppModel(app, name, tree), nil
	}

	file = timeline.EnsureExtension(file)
	tree, err := loadFile(file)
	if err != nil {
		return appModel{}, err
	}
	m := newAppModel(app, filepath.Base(file), tree)
	m.state.File = file
	return m, nil
}
