package testutil

import (
	"context"
	"testing"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Item options
type ItemOption func(*domain.Item)

func WithTopic(topic string) ItemOption {
	return func(it *domain.Item) {
		it.Topic = topic
	}
}

// NewTestItem builds an item for the given YYYY-MM-DD date. It panics on a
// malformed literal.
func NewTestItem(date string, opts ...ItemOption) domain.Item {
	it := domain.Item{
		Topic: "Topic " + date,
		Date:  domain.MustParseDate(date),
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// ItemAdder is the write half of the item store.
type ItemAdder interface {
	AddBatch(ctx context.Context, userID, batchID string, items []domain.Item) ([]domain.StoredItem, error)
}

// SeedItems stores items for userID as one batch and returns the batch id.
func SeedItems(t *testing.T, repo ItemAdder, userID string, items ...domain.Item) string {
	t.Helper()
	batchID := uuid.New().String()
	_, err := repo.AddBatch(context.Background(), userID, batchID, items)
	require.NoError(t, err)
	return batchID
}
