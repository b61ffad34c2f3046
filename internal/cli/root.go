package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/reminder"
	"github.com/alexanderramin/recall/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and environment the commands run against.
type App struct {
	Users     service.UserService
	Revisions service.RevisionService
	Agenda    service.AgendaService
	Transfer  service.TransferService

	// Reminder builds a runner for a cron expression, delivering to out.
	Reminder func(schedule string, out io.Writer) (*reminder.Runner, error)
	// RemindSchedule is used when `remind` gets no --schedule.
	RemindSchedule string

	// Location decides which calendar day "today" is. Nil means local time.
	Location *time.Location
	Now      func() time.Time

	// IsInteractive reports whether stdin is a terminal. When it is, the
	// bare root command opens the terminal UI.
	IsInteractive func() bool
}

func (a *App) today() domain.Date {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return domain.Today(now(), a.Location)
}

// NewRootCmd creates the top-level "recall" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "recall",
		Short:         "Spaced-repetition revision reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newUsersCmd(app),
		newAddCmd(app),
		newAgendaCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newRemindCmd(app),
		newUICmd(app),
	)

	return root
}
