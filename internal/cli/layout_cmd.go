package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lifemap/internal/cli/formatter"
	"github.com/alexanderramin/lifemap/internal/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindLayoutFlags exposes the layout geometry as flags defaulting to cfg.
func bindLayoutFlags(fs *pflag.FlagSet, cfg *layout.Config) {
	fs.Float64Var(&cfg.OriginX, "origin-x", cfg.OriginX, "Root box left edge")
	fs.Float64Var(&cfg.OriginY, "origin-y", cfg.OriginY, "Root vertical center")
	fs.Float64Var(&cfg.HorizontalSpacing, "spacing", cfg.HorizontalSpacing, "Distance between depth columns")
	fs.Float64Var(&cfg.LeafHeight, "leaf-height", cfg.LeafHeight, "Vertical band reserved per leaf")
	fs.Float64Var(&cfg.NodeWidth, "node-width", cfg.NodeWidth, "Box width")
	fs.Float64Var(&cfg.NodeHeight, "node-height", cfg.NodeHeight, "Box height")
}

// parsePoint parses "X,Y".
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: expected X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: bad X: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: bad Y: %w", s, err)
	}
	return x, y, nil
}

func newLayoutCmd(app *App, opts *rootOptions) *cobra.Command {
	cfg := app.Config.Layout
	var at string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed canvas boxes, or hit-test a point with --at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctrl, err := openController(cmd.Context(), app, opts.timeline)
			if err != nil {
				return err
			}
			ctrl.SetConfig(cfg)

			out := cmd.OutOrStdout()
			if at == "" {
				fmt.Fprint(out, formatter.FormatLayout(ctrl.Scene()))
				return nil
			}

			x, y, err := parsePoint(at)
			if err != nil {
				return err
			}
			hit := layout.FindNodeAt(ctrl.Tree().Root(), x, y)
			fmt.Fprintln(out, formatter.FormatHit(x, y, hit))
			return nil
		},
	}

	bindLayoutFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVar(&at, "at", "", "Report the goal under canvas point X,Y")
	return cmd
}
