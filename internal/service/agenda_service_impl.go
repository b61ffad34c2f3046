package service

import (
	"context"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/alexanderramin/recall/internal/scheduler"
)

type agendaService struct {
	users    UserService
	items    repository.ItemRepo
	observer UseCaseObserver
}

func NewAgendaService(users UserService, items repository.ItemRepo, observers ...UseCaseObserver) AgendaService {
	return &agendaService{
		users:    users,
		items:    items,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *agendaService) Agenda(ctx context.Context, userID string, today domain.Date) (agenda []domain.Item, err error) {
	fields := map[string]any{
		"user":  userID,
		"today": today.String(),
	}
	done := track(ctx, s.observer, "agenda", fields)
	defer func() { done(err) }()

	stored, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	agenda = scheduler.SelectAgenda(today, stored)
	fields["stored_count"] = len(stored)
	fields["agenda_count"] = len(agenda)
	return agenda, nil
}

func (s *agendaService) DueOn(ctx context.Context, userID string, day domain.Date) (due []domain.Item, err error) {
	fields := map[string]any{
		"user": userID,
		"day":  day.String(),
	}
	done := track(ctx, s.observer, "due-on", fields)
	defer func() { done(err) }()

	stored, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	due = scheduler.DueOn(day, stored)
	fields["due_count"] = len(due)
	return due, nil
}

func (s *agendaService) Stored(ctx context.Context, userID string) (n int, err error) {
	fields := map[string]any{"user": userID}
	done := track(ctx, s.observer, "stored", fields)
	defer func() { done(err) }()

	if err = s.users.Validate(ctx, userID); err != nil {
		return 0, err
	}
	n, err = s.items.CountByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	fields["stored_count"] = n
	return n, nil
}

func (s *agendaService) load(ctx context.Context, userID string) ([]domain.Item, error) {
	if err := s.users.Validate(ctx, userID); err != nil {
		return nil, err
	}
	stored, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repository.Items(stored), nil
}
