package repository

import (
	"context"

	"github.com/alexanderramin/recall/internal/domain"
)

// ItemRepo stores the scheduled review items of every user.
type ItemRepo interface {
	// AddBatch appends items for userID in the given order. It neither
	// deduplicates nor validates topics.
	AddBatch(ctx context.Context, userID, batchID string, items []domain.Item) ([]domain.StoredItem, error)
	// ListByUser returns the user's items in insertion order; an unknown
	// user yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]domain.StoredItem, error)
	// ListBatch returns the items written under one batch id in insertion order.
	ListBatch(ctx context.Context, batchID string) ([]domain.StoredItem, error)
	// ListUsers returns the distinct user ids that have at least one item.
	ListUsers(ctx context.Context) ([]string, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
