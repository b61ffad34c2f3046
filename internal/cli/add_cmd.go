package cli

import (
	"fmt"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var userID, topic, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule the five reviews of a topic",
		Long: `Schedule reviews of a topic at +7 days, +1, +3, +6 and +12 months
from the given date (today by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			today := app.today()
			if date == "" {
				date = today.String()
			}

			anchor, err := domain.ParseDate(date)
			if err != nil {
				return err
			}

			items, err := app.Revisions.Schedule(ctx, userID, topic, anchor.String())
			if err != nil {
				return err
			}

			agenda, err := app.Agenda.Agenda(ctx, userID, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScheduled(userID, topic, anchor, items))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("User %s now has %d upcoming review(s).", userID, len(agenda))))
			return nil
		},
	}

	userVar(cmd.Flags(), &userID)
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Topic to review")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date the topic was studied (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}
