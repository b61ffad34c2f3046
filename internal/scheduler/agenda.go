package scheduler

import (
	"sort"

	"github.com/alexanderramin/recall/internal/domain"
)

// SelectAgenda returns the items dated on or after today, earliest first.
// Items sharing a date keep their input order. A nil or empty input, or one
// where everything is in the past, yields an empty non-nil slice.
func SelectAgenda(today domain.Date, items []domain.Item) []domain.Item {
	agenda := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Date.Before(today) {
			continue
		}
		agenda = append(agenda, it)
	}
	CanonicalSort(agenda)
	return agenda
}

// CanonicalSort orders items by date ascending. The sort is stable.
func CanonicalSort(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

// DueOn returns the items dated exactly day, in input order.
func DueOn(day domain.Date, items []domain.Item) []domain.Item {
	var due []domain.Item
	for _, it := range items {
		if it.Date.Equal(day) {
			due = append(due, it)
		}
	}
	return due
}
