package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/recall/internal/cli"
	"github.com/alexanderramin/recall/internal/config"
	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/reminder"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/alexanderramin/recall/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	// Wire repositories and unit of work
	items := repository.NewSQLiteItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	users := service.NewUserService(cfg.Users)
	agenda := service.NewAgendaService(users, items, observer)

	app := &cli.App{
		Users:     users,
		Revisions: service.NewRevisionService(users, uow, observer),
		Agenda:    agenda,
		Transfer:  service.NewTransferService(users, items, uow, observer),
		Reminder: func(schedule string, out io.Writer) (*reminder.Runner, error) {
			return reminder.NewRunner(
				reminder.Config{Schedule: schedule, Location: loc},
				users, agenda, reminder.NewWriterNotifier(out), logger)
		},
		RemindSchedule: cfg.RemindSchedule,
		Location:       loc,
	}

	// Detect interactive terminal for the bare `recall` entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
