package cli

import (
	"fmt"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Manage stored timelines",
	}

	cmd.AddCommand(
		newTimelineNewCmd(app),
		newTimelineListCmd(app, opts),
		newTimelineRenameCmd(app),
		newTimelineDeleteCmd(app),
		newTimelineImportCmd(app, opts),
		newTimelineExportCmd(app, opts),
	)

	return cmd
}

func newTimelineNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new NAME",
		Short: "Create a timeline holding a single root goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := app.Timelines.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created timeline %s with root %q\n",
				formatter.Bold(args[0]), tree.Root().Name)
			return nil
		},
	}
}

func newTimelineListCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List timelines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Timelines.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimelineList(list, opts.timeline, app.now()))
			return nil
		},
	}
}

func newTimelineRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a timeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timelines.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed timeline %s to %s\n", args[0], formatter.Bold(args[1]))
			return nil
		},
	}
}

func newTimelineDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a timeline and all its goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(app, yes, fmt.Sprintf("Delete timeline %q and all its goals?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			if err := app.Timelines.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted timeline %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newTimelineImportCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load a timeline document into the selected timeline",
		Long: "Load a timeline document into the timeline chosen with --timeline,\n" +
			"creating it if needed. The stored tree is replaced only when the\n" +
			"whole file parses.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := app.Timelines.ImportFile(cmd.Context(), opts.timeline, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d goals into %s\n", tree.Len(), formatter.Bold(opts.timeline))
			return nil
		},
	}
}

func newTimelineExportCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the selected timeline to a timeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := app.Timelines.ExportFile(cmd.Context(), opts.timeline, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", opts.timeline, written)
			return nil
		},
	}
}

// confirmDestructive approves immediately with --yes, prompts on a terminal,
// and refuses otherwise.
func confirmDestructive(app *App, yes bool, prompt string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("refusing to delete without confirmation; pass --yes")
	}
	return app.confirm(prompt)
}
