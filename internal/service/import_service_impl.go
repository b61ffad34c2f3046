package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/recall/internal/db"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/importer"
	"github.com/alexanderramin/recall/internal/repository"
	"github.com/google/uuid"
)

type transferService struct {
	users    UserService
	items    repository.ItemRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTransferService(users UserService, items repository.ItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TransferService {
	return &transferService{
		users:    users,
		items:    items,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *transferService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "import", fields)
	defer func() { done(err) }()

	known := func(id string) bool { return s.users.Validate(ctx, id) == nil }
	if errs := importer.ValidateImportSchema(schema, known); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	batches, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItemRepo(tx)
		for _, b := range batches {
			if len(b.Items) == 0 {
				continue
			}
			if _, err := repo.AddBatch(ctx, b.UserID, uuid.New().String(), b.Items); err != nil {
				return fmt.Errorf("importing items for user %q: %w", b.UserID, err)
			}
			result.UserCount++
			result.ItemCount += len(b.Items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["user_count"] = result.UserCount
	fields["item_count"] = result.ItemCount
	return result, nil
}

func (s *transferService) Export(ctx context.Context, w io.Writer, userIDs []string, format importer.Format) (err error) {
	fields := map[string]any{"format": string(format)}
	done := track(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	if len(userIDs) == 0 {
		stored, err := s.items.ListUsers(ctx)
		if err != nil {
			return err
		}
		userIDs = stored
	}

	byUser := make(map[string][]domain.Item, len(userIDs))
	for _, id := range userIDs {
		stored, err := s.items.ListByUser(ctx, id)
		if err != nil {
			return fmt.Errorf("exporting user %q: %w", id, err)
		}
		byUser[id] = repository.Items(stored)
	}
	fields["user_count"] = len(userIDs)
	return importer.EncodeSchema(w, importer.FromItems(userIDs, byUser), format)
}

// ValidationError lists every problem found in an import file.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		msg += "\n  - " + err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

func formatValidationErrors(errs []error) error {
	return &ValidationError{Errs: errs}
}
