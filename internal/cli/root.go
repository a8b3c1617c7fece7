package cli

import (
	"time"

	"github.com/alexanderramin/lifemap/internal/config"
	"github.com/alexanderramin/lifemap/internal/domain"
	"github.com/alexanderramin/lifemap/internal/editor"
	"github.com/alexanderramin/lifemap/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment hooks used by CLI commands.
type App struct {
	Timelines service.TimelineService
	Config    config.Config

	// Opener shows goal links. Nil means the system browser.
	Opener editor.LinkOpener

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// canvas editor refuse to run when it returns false.
	IsInteractive func() bool

	// Confirm asks a yes/no question on the terminal. Nil means a huh prompt.
	Confirm func(prompt string) (bool, error)

	// Now is the clock for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) opener() editor.LinkOpener {
	if a.Opener != nil {
		return a.Opener
	}
	return editor.SystemLinkOpener{}
}

func (a *App) confirm(prompt string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(prompt)
	}
	return huhConfirm(prompt)
}

// rootOptions carries persistent flags to subcommands.
type rootOptions struct {
	timeline string
}

// NewRootCmd creates the top-level "lifemap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "lifemap",
		Short:         "Plan your life as a tree of goals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.timeline, "timeline", "t", domain.DefaultTimelineName, "Timeline to work on")

	root.AddCommand(
		newTimelineCmd(app, opts),
		newGoalCmd(app, opts),
		newShowCmd(app, opts),
		newLayoutCmd(app, opts),
		newEditCmd(app, opts),
	)

	return root
}
