package scheduler

import (
	"github.com/alexanderramin/recall/internal/domain"
)

// ComputeRevisionDates parses anchor and returns the review items for topic,
// one per interval of the revision schedule, in schedule order. A malformed
// anchor yields domain.ErrInvalidDateFormat and no items.
func ComputeRevisionDates(topic, anchor string) ([]domain.Item, error) {
	d, err := domain.ParseDate(anchor)
	if err != nil {
		return nil, err
	}
	return RevisionsFrom(topic, d), nil
}

// RevisionsFrom is ComputeRevisionDates for an already-parsed anchor.
// Each interval is applied to the original anchor, so month clamping never
// compounds across intervals.
func RevisionsFrom(topic string, anchor domain.Date) []domain.Item {
	schedule := domain.RevisionSchedule()
	items := make([]domain.Item, 0, len(schedule))
	for _, iv := range schedule {
		items = append(items, domain.Item{Topic: topic, Date: iv.Apply(anchor)})
	}
	return items
}
