package repository

import (
	"time"

	"github.com/alexanderramin/recall/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Items strips storage metadata, keeping order.
func Items(stored []domain.StoredItem) []domain.Item {
	out := make([]domain.Item, len(stored))
	for i, s := range stored {
		out[i] = s.Item
	}
	return out
}
