package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recall/internal/domain"
)

// NoAgendaMessage is shown when a user has nothing due today or later.
func NoAgendaMessage(userID string) string {
	return fmt.Sprintf("No agenda items for user %s.", userID)
}

// TopicLabel renders a topic, marking the empty topic explicitly.
func TopicLabel(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return Dim("(no topic)")
	}
	return StyleFg.Render(topic)
}

// FormatAgenda renders a user's agenda as a table, or the empty-state
// message when there is nothing to show.
func FormatAgenda(userID string, today domain.Date, items []domain.Item) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Agenda for user %s", userID)))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(Dim(NoAgendaMessage(userID)))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			LongDate(it.Date),
			RelativeDaysStyled(today, it.Date),
			TopicLabel(it.Topic),
		})
	}
	b.WriteString(RenderTable([]string{"#", "DATE", "WHEN", "TOPIC"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d upcoming review(s) from %s", len(items), LongDate(today))))
	b.WriteString("\n")
	return b.String()
}

// FormatScheduled renders the reviews just created for a topic.
func FormatScheduled(userID, topic string, anchor domain.Date, items []domain.Item) string {
	var lines []string
	for i, it := range items {
		step := ""
		if i < domain.RevisionCount {
			step = domain.RevisionSchedule()[i].String()
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			StyleBlue.Render(fmt.Sprintf("%-5s", step)),
			it.Date.String(),
			Dim(LongDate(it.Date))))
	}
	title := fmt.Sprintf("Scheduled for user %s", userID)
	body := fmt.Sprintf("%s %s\n%s %s\n\n%s",
		Dim("Topic:"), TopicLabel(topic),
		Dim("From: "), LongDate(anchor),
		strings.Join(lines, "\n"))
	return RenderBox(title, body)
}

// FormatUsers lists the configured identities, marking how many stored
// items each has.
func FormatUsers(users []string, counts map[string]int) string {
	rows := make([][]string, 0, len(users))
	for _, id := range users {
		rows = append(rows, []string{Bold(id), fmt.Sprintf("%d", counts[id])})
	}
	return RenderTable([]string{"USER", "ITEMS"}, rows)
}
