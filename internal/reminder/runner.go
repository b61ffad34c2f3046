// Package reminder sends the day's due revision items on a cron schedule.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/robfig/cron/v3"
)

// UserLister yields the identities to remind.
type UserLister interface {
	List(ctx context.Context) ([]string, error)
}

// DueLister yields a user's items dated exactly day.
type DueLister interface {
	DueOn(ctx context.Context, userID string, day domain.Date) ([]domain.Item, error)
}

// Config controls when the runner fires.
type Config struct {
	// Schedule is a five-field cron expression or a descriptor such as @daily.
	Schedule string
	// Location is used both for cron matching and for deriving "today".
	Location *time.Location
}

// Summary describes one reminder pass.
type Summary struct {
	Day      domain.Date
	Users    int
	Notified int
}

type Runner struct {
	cfg      Config
	sched    cron.Schedule
	users    UserLister
	due      DueLister
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule validates a cron expression the way the runner will read it.
func ParseSchedule(expr string) (cron.Schedule, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("remind schedule required")
	}
	s, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid remind schedule %q: %w", expr, err)
	}
	return s, nil
}

func NewRunner(cfg Config, users UserLister, due DueLister, notifier Notifier, log *slog.Logger) (*Runner, error) {
	sched, err := ParseSchedule(cfg.Schedule)
	if err != nil {
		return nil, err
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		cfg:      cfg,
		sched:    sched,
		users:    users,
		due:      due,
		notifier: notifier,
		log:      log.With("component", "reminder"),
		now:      time.Now,
	}, nil
}

// Next returns the first firing time after t.
func (r *Runner) Next(t time.Time) time.Time {
	return r.sched.Next(t.In(r.cfg.Location))
}

// RunOnce notifies every user of the items due on today. A failure for one
// user does not stop the others; all failures are joined in the result.
func (r *Runner) RunOnce(ctx context.Context, today domain.Date) (Summary, error) {
	sum := Summary{Day: today}
	users, err := r.users.List(ctx)
	if err != nil {
		return sum, fmt.Errorf("listing users: %w", err)
	}

	var errs []error
	for _, id := range users {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		items, err := r.due.DueOn(ctx, id, today)
		if err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", id, err))
			continue
		}
		sum.Users++
		for _, it := range items {
			if err := r.notifier.Notify(ctx, id, it); err != nil {
				errs = append(errs, fmt.Errorf("notifying user %s: %w", id, err))
				continue
			}
			sum.Notified++
		}
	}
	return sum, errors.Join(errs...)
}

// Start fires RunOnce on every schedule tick until ctx is cancelled, then
// waits for a running pass to finish.
func (r *Runner) Start(ctx context.Context) error {
	c := cron.New(cron.WithParser(parser), cron.WithLocation(r.cfg.Location))
	c.Schedule(r.sched, cron.FuncJob(func() { r.tick(ctx) }))
	c.Start()
	r.log.Info("reminders started",
		"schedule", r.cfg.Schedule,
		"tz", r.cfg.Location.String(),
		"next", r.Next(r.now()).Format(time.RFC3339))

	<-ctx.Done()
	<-c.Stop().Done()
	r.log.Info("reminders stopped")
	return nil
}

func (r *Runner) tick(ctx context.Context) {
	today := domain.Today(r.now(), r.cfg.Location)
	sum, err := r.RunOnce(ctx, today)
	if err != nil {
		r.log.Error("reminder pass failed", "day", today.String(), "notified", sum.Notified, "error", err)
		return
	}
	r.log.Info("reminder pass", "day", today.String(), "users", sum.Users, "notified", sum.Notified)
}
