package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/alexanderramin/recall/internal/scheduler"
	"github.com/google/uuid"
)

type revisionService struct {
	users    UserService
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRevisionService(users UserService, uow db.UnitOfWork, observers ...UseCaseObserver) RevisionService {
	return &revisionService{
		users:    users,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *revisionService) Schedule(ctx context.Context, userID, topic, anchor string) (items []domain.Item, err error) {
	fields := map[string]any{
		"user":   userID,
		"anchor": anchor,
	}
	done := track(ctx, s.observer, "schedule-revisions", fields)
	defer func() { done(err) }()

	if err = s.users.Validate(ctx, userID); err != nil {
		return nil, err
	}

	items, err = scheduler.ComputeRevisionDates(topic, anchor)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	fields["batch"] = batchID
	// The stored batch is read back inside the transaction so callers see
	// exactly what was committed.
	var stored []domain.StoredItem
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItemRepo(tx)
		if _, err := repo.AddBatch(ctx, userID, batchID, items); err != nil {
			return err
		}
		var listErr error
		stored, listErr = repo.ListBatch(ctx, batchID)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("storing revisions: %w", err)
	}
	items = repository.Items(stored)

	fields["item_count"] = len(items)
	return items, nil
}
