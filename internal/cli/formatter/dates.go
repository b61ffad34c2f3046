package formatter

import (
	"fmt"

	"github.com/alexanderramin/recall/internal/domain"
)

// LongDate renders a date the way people write it, e.g. "July 26, 2025".
// The value is a calendar day, so no zone conversion takes place.
func LongDate(d domain.Date) string {
	if d.IsZero() {
		return "--"
	}
	return d.Time().Format("January 2, 2006")
}

// RelativeDays describes d relative to today: "Today", "Tomorrow", "In 5d",
// "In 3w", "In 4mo", "Yesterday", "3d ago" and so on.
func RelativeDays(today, d domain.Date) string {
	days := today.DaysUntil(d)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDaysStyled is RelativeDays colored by urgency.
func RelativeDaysStyled(today, d domain.Date) string {
	return UrgencyStyle(today.DaysUntil(d)).Render(RelativeDays(today, d))
}
