package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals for the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Tracker.MonthlyStats(context.Background(), user, time.Now())
			if err != nil {
				return err
			}

			lines := []string{
				fmt.Sprintf("%s        %s", formatter.Bold("Total Work Hours"), stats.Total),
				fmt.Sprintf("%s             %d", formatter.Bold("Worked Days"), stats.WorkedDays),
				fmt.Sprintf("%s          $%d", formatter.Bold("Current Salary"), stats.CurrentSalary),
				fmt.Sprintf("%s  $%d", formatter.Dim("Expected (8h/day)"), stats.ExpectedSalary),
				fmt.Sprintf("%s    $%d", formatter.Dim("Projected Month"), stats.ProjectedSalary),
			}

			title := fmt.Sprintf("Stats for %s %d", calendar.MonthName(stats.Month), stats.Year)
			fmt.Println(formatter.RenderBox(title, strings.Join(lines, "\n")))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", defaultUser, "User whose stats to show")

	return cmd
}
