package importer

import (
	"fmt"

	"github.com/alexanderramin/recall/internal/domain"
)

// UserBatch is the converted content for one user, in file order.
type UserBatch struct {
	UserID string
	Items  []domain.Item
}

// Convert turns a validated schema into domain items. Call
// ValidateImportSchema first; Convert still refuses malformed dates.
func Convert(schema *ImportSchema) ([]UserBatch, error) {
	batches := make([]UserBatch, 0, len(schema.Users))
	for i, u := range schema.Users {
		items := make([]domain.Item, 0, len(u.Items))
		for j, raw := range u.Items {
			it, err := domain.NewItem(raw.Topic, raw.Date)
			if err != nil {
				return nil, fmt.Errorf("users[%d].items[%d]: %w", i, j, err)
			}
			items = append(items, it)
		}
		batches = append(batches, UserBatch{UserID: u.ID, Items: items})
	}
	return batches, nil
}

// FromItems builds an export schema; users appear in the given order.
func FromItems(order []string, byUser map[string][]domain.Item) *ImportSchema {
	schema := &ImportSchema{Users: make([]UserImport, 0, len(order))}
	for _, id := range order {
		items := byUser[id]
		u := UserImport{ID: id, Items: make([]ItemImport, 0, len(items))}
		for _, it := range items {
			u.Items = append(u.Items, ItemImport{Topic: it.Topic, Date: it.Date.String()})
		}
		schema.Users = append(schema.Users, u)
	}
	return schema
}
