package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aminrezaei/worklog/internal/cli/formatter"
	"github.com/aminrezaei/worklog/internal/tracker"
)

// defaultUser identifies the local operator when the CLI is used without
// the Telegram front-end.
const defaultUser = "local"

func newCheckinCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Open a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			civil, err := app.Tracker.CheckIn(context.Background(), user, time.Now())
			if errors.Is(err, tracker.ErrAlreadyOpen) {
				return fmt.Errorf("a session is already open; run 'worklog checkout' first")
			}
			if err != nil {
				return err
			}
			fmt.Printf("Checked in at %s on %s (%s)\n", civil.Clock, civil.Date, civil.Weekday)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", defaultUser, "User the session belongs to")

	return cmd
}

func newCheckoutCmd(app *App) *cobra.Command {
	var user, activity string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Close the open work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(activity) == "" && isatty.IsTerminal(os.Stdin.Fd()) {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Activity").
						Description("What did you work on in this session?").
						Value(&activity),
				))
				if err := form.Run(); err != nil {
					return fmt.Errorf("reading activity: %w", err)
				}
			}

			rec, err := app.Tracker.CheckOut(context.Background(), user, time.Now(), activity)
			switch {
			case errors.Is(err, tracker.ErrNoOpenSession):
				return fmt.Errorf("no open session; run 'worklog checkin' first")
			case errors.Is(err, tracker.ErrEmptyActivity):
				return fmt.Errorf("activity is required; pass --activity or enter it when prompted")
			case err != nil:
				return err
			}

			fmt.Printf("Checked out at %s. Session %s → %s, duration %s\n",
				rec.CheckOut, rec.CheckIn, rec.CheckOut, rec.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", defaultUser, "User the session belongs to")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity description for the session")

	return cmd
}

func newSessionsCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Tracker.Records(context.Background(), user)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}

			headers := []string{"DATE", "DAY", "IN", "OUT", "HOURS", "ACTIVITY"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				activity := rec.Activity
				if len(activity) > 40 {
					activity = activity[:37] + "..."
				}
				rows = append(rows, []string{
					rec.Date,
					rec.Weekday,
					rec.CheckIn,
					rec.CheckOut,
					rec.Duration,
					formatter.Dim(activity),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", defaultUser, "User whose sessions to list")

	return cmd
}
