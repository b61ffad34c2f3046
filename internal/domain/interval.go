package domain

import "fmt"

type IntervalUnit string

const (
	UnitDays   IntervalUnit = "days"
	UnitMonths IntervalUnit = "months"
)

// Interval is one offset of the revision schedule.
type Interval struct {
	Count int
	Unit  IntervalUnit
}

// Apply returns anchor shifted by the interval. Month intervals clamp to
// the end of the target month.
func (iv Interval) Apply(anchor Date) Date {
	switch iv.Unit {
	case UnitMonths:
		return anchor.AddMonths(iv.Count)
	default:
		return anchor.AddDays(iv.Count)
	}
}

func (iv Interval) String() string {
	switch iv.Unit {
	case UnitMonths:
		return fmt.Sprintf("+%dmo", iv.Count)
	default:
		return fmt.Sprintf("+%dd", iv.Count)
	}
}

// revisionSchedule is the fixed, ordered set of review offsets.
var revisionSchedule = [...]Interval{
	{Count: 7, Unit: UnitDays},
	{Count: 1, Unit: UnitMonths},
	{Count: 3, Unit: UnitMonths},
	{Count: 6, Unit: UnitMonths},
	{Count: 12, Unit: UnitMonths},
}

// RevisionSchedule returns a copy of the review offsets in application order.
func RevisionSchedule() []Interval {
	out := make([]Interval, len(revisionSchedule))
	copy(out, revisionSchedule[:])
	return out
}

// RevisionCount is the number of items produced per scheduling call.
const RevisionCount = len(revisionSchedule)
