package cli

import (
	"fmt"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the configured user IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := app.Users.List(ctx)
			if err != nil {
				return err
			}
			counts := make(map[string]int, len(users))
			for _, id := range users {
				n, err := app.Agenda.Stored(ctx, id)
				if err != nil {
					return fmt.Errorf("counting items for user %s: %w", id, err)
				}
				counts[id] = n
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUsers(users, counts))
			return nil
		},
	}
}
