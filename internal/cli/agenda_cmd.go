package cli

import (
	"fmt"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	var userID string
	var today domain.Date

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show a user's upcoming reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("today") {
				today = app.today()
			}
			items, err := app.Agenda.Agenda(cmd.Context(), userID, today)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgenda(userID, today, items))
			return nil
		},
	}

	userVar(cmd.Flags(), &userID)
	dateVar(cmd.Flags(), &today, "today", "Reference day (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
