package cli

import (
	"fmt"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/timeline"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App, opts *rootOptions) *cobra.Command {
	var showIDs bool
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the goal tree with progress and dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := opts.timeline
			var tree *domain.Tree
			var err error
			if file != "" {
				title = file
				tree, err = timeline.ReadFile(file)
			} else {
				tree, err = loadTimeline(cmd.Context(), app, opts.timeline)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n\n", formatter.Header("TIMELINE"), formatter.Bold(title))
			fmt.Fprint(out, formatter.FormatGoalTree(tree, showIDs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Print a timeline document instead of a stored timeline")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Prefix goals with their short IDs")
	return cmd
}
