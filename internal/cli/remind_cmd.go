package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	var once bool
	var schedule string
	var today domain.Date

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print reviews due today, once or on a cron schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Reminder == nil {
				return fmt.Errorf("reminders are not configured")
			}
			if schedule == "" {
				schedule = app.RemindSchedule
			}
			out := cmd.OutOrStdout()
			runner, err := app.Reminder(schedule, out)
			if err != nil {
				return err
			}

			if once {
				if !cmd.Flags().Changed("today") {
					today = app.today()
				}
				sum, err := runner.RunOnce(cmd.Context(), today)
				if sum.Notified == 0 && err == nil {
					fmt.Fprintln(out, formatter.Dim("No reviews due on "+formatter.LongDate(today)+"."))
				}
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(out, "Reminders scheduled (%s), next at %s. Press Ctrl+C to stop.\n",
				schedule, runner.Next(time.Now()).Format("Mon Jan 2 15:04 MST"))
			return runner.Start(ctx)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single pass and exit")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression (default from config)")
	dateVar(cmd.Flags(), &today, "today", "Reference day for --once (YYYY-MM-DD)")

	return cmd
}
