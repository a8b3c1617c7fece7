package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newGoalCmd(app *App, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Add, edit and remove goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app, opts),
		newGoalEditCmd(app, opts),
		newGoalRemoveCmd(app, opts),
		newGoalShowCmd(app, opts),
		newGoalOpenCmd(app, opts),
	)

	return cmd
}

// goalFlags binds the editable goal fields to a flag set.
type goalFlags struct {
	name        string
	date        string
	url         string
	progress    int
	description string
}

func (f *goalFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Goal name")
	fs.StringVar(&f.date, "date", "", "Free-form target date")
	fs.StringVar(&f.url, "url", "", "Link to open for this goal")
	fs.IntVar(&f.progress, "progress", 0, "Completion percent (clamped to 0-100)")
	fs.StringVar(&f.description, "description", "", "Notes")
}

// apply overlays the flags that were set on base.
func (f *goalFlags) apply(fs *pflag.FlagSet, base editor.Fields) (editor.Fields, error) {
	if fs.Changed("name") {
		if strings.TrimSpace(f.name) == "" {
			return base, fmt.Errorf("goal name cannot be empty")
		}
		base.Name = f.name
	}
	if fs.Changed("date") {
		base.Date = f.date
	}
	if fs.Changed("url") {
		base.URL = f.url
	}
	if fs.Changed("progress") {
		base.Progress = f.progress
	}
	if fs.Changed("description") {
		base.Description = f.description
	}
	return base, nil
}

func newGoalAddCmd(app *App, opts *rootOptions) *cobra.Command {
	var parentRef string
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal under a parent (the root by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := openController(ctx, app, opts.timeline)
			if err != nil {
				return err
			}

			parent, err := resolveGoal(ctrl.Tree(), parentRef)
			if err != nil {
				return err
			}
			if err := ctrl.Select(parent); err != nil {
				return err
			}
			child := ctrl.AddChild()
			if child == nil {
				return fmt.Errorf("could not add a goal under %q", parent.Name)
			}
			if err := ctrl.Select(child); err != nil {
				return err
			}
			fields, err := flags.apply(cmd.Flags(), editor.FieldsOf(child))
			if err != nil {
				return err
			}
			ctrl.ApplyEdits(fields)

			if err := app.Timelines.Save(ctx, opts.timeline, ctrl.Tree()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s under %s\n",
				formatter.Bold(child.Name), formatter.TruncID(child.ID), parent.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&parentRef, "parent", rootRef, "Parent goal ID, ID prefix or name")
	flags.bind(cmd.Flags())
	return cmd
}

func newGoalEditCmd(app *App, opts *rootOptions) *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "edit GOAL",
		Short: "Change a goal's name, date, link, progress or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := openController(ctx, app, opts.timeline)
			if err != nil {
				return err
			}
			g, err := resolveGoal(ctrl.Tree(), args[0])
			if err != nil {
				return err
			}
			if err := ctrl.Select(g); err != nil {
				return err
			}
			fields, err := flags.apply(cmd.Flags(), editor.FieldsOf(g))
			if err != nil {
				return err
			}
			ctrl.ApplyEdits(fields)

			if err := app.Timelines.Save(ctx, opts.timeline, ctrl.Tree()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", formatter.Bold(g.Name), formatter.RenderProgress(g.Progress(), 10))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

func newGoalRemoveCmd(app *App, opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove GOAL",
		Aliases: []string{"rm"},
		Short:   "Remove a goal and everything under it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := openController(ctx, app, opts.timeline)
			if err != nil {
				return err
			}
			g, err := resolveGoal(ctrl.Tree(), args[0])
			if err != nil {
				return err
			}
			if err := ctrl.Select(g); err != nil {
				return err
			}
			if ctrl.IsRootSelected() {
				return domain.ErrProtectedNode
			}

			var promptErr error
			confirm := editor.ConfirmFunc(func(prompt string) bool {
				ok, err := confirmDestructive(app, yes, prompt)
				promptErr = err
				return ok
			})
			removed, err := ctrl.DeleteSelected(confirm)
			if err != nil {
				return err
			}
			if promptErr != nil {
				return promptErr
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}

			if err := app.Timelines.Save(ctx, opts.timeline, ctrl.Tree()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s and its sub-goals\n", formatter.Bold(g.Name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newGoalShowCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show GOAL",
		Short: "Show one goal's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTimeline(cmd.Context(), app, opts.timeline)
			if err != nil {
				return err
			}
			g, err := resolveGoal(tree, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalDetail(tree, g))
			return nil
		},
	}
}

func newGoalOpenCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open GOAL",
		Short: "Open a goal's link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := openController(cmd.Context(), app, opts.timeline)
			if err != nil {
				return err
			}
			g, err := resolveGoal(ctrl.Tree(), args[0])
			if err != nil {
				return err
			}
			if err := ctrl.Select(g); err != nil {
				return err
			}

			err = ctrl.OpenLink()
			if errors.Is(err, domain.ErrNoLink) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.NoURLMessage)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opening %s\n", g.URL)
			return nil
		},
	}
}
