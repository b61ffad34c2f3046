package service

import (
	"context"
	"io"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/alexanderramin/recall/internal/importer"
)

type UserService interface {
	List(ctx context.Context) ([]string, error)
	// Validate returns domain.ErrUnknownUser for ids outside the identity list.
	Validate(ctx context.Context, userID string) error
}

type RevisionService interface {
	// Schedule computes the five review items for topic from anchor and
	// stores them for userID. Either all five are stored or none.
	Schedule(ctx context.Context, userID, topic, anchor string) ([]domain.Item, error)
}

type AgendaService interface {
	// Agenda returns the user's items dated today or later, earliest first.
	Agenda(ctx context.Context, userID string, today domain.Date) ([]domain.Item, error)
	// DueOn returns the user's items dated exactly day.
	DueOn(ctx context.Context, userID string, day domain.Date) ([]domain.Item, error)
	// Stored counts every item ever scheduled for the user, past ones included.
	Stored(ctx context.Context, userID string) (int, error)
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	UserCount int
	ItemCount int
}

type TransferService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
	// Export writes the stored items of userIDs (all users with items when
	// empty) to w.
	Export(ctx context.Context, w io.Writer, userIDs []string, format importer.Format) error
}
