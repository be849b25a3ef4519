package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aminrezaei/worklog/internal/config"
	"github.com/aminrezaei/worklog/internal/tracker"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Tracker *tracker.Tracker
	Config  *config.Config
	Log     zerolog.Logger
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worklog",
		Short: "Work-hours tracker with check-in/check-out sessions",
	}

	root.AddCommand(
		newServeCmd(app),
		newCheckinCmd(app),
		newCheckoutCmd(app),
		newStatsCmd(app),
		newSessionsCmd(app),
	)

	return root
}
