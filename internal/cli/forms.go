package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/alexanderramin/recall/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// recallHuhTheme styles huh forms with the formatter palette.
func recallHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate accepts a strict YYYY-MM-DD calendar date.
func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

type scheduleFields struct {
	topic string
	date  string
}

// scheduleForm asks for a topic and the day it was studied.
func scheduleForm(userID string, f *scheduleFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Topic for user %s", userID)).
				Placeholder("Introduction").
				Value(&f.topic),
			huh.NewInput().
				Title("Studied on (YYYY-MM-DD)").
				Placeholder(f.date).
				Value(&f.date).
				Validate(validateDate),
		),
	).WithTheme(recallHuhTheme()).WithShowHelp(false)
}

// applySchedule stores the reviews described by f and reports the outcome
// as a status line.
func applySchedule(app *App, userID string, f *scheduleFields) tea.Msg {
	items, err := app.Revisions.Schedule(context.Background(), userID, f.topic, f.date)
	if err != nil {
		return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
	}
	return statusMsg{text: formatter.StyleGreen.Render(fmt.Sprintf(
		"Scheduled %d reviews for user %s, first on %s.",
		len(items), userID, formatter.LongDate(items[0].Date)))}
}

// startScheduleWizard pushes the add-topic form for the active user.
func startScheduleWizard(state *SharedState) tea.Cmd {
	userID := state.ActiveUser()
	if userID == "" {
		return showStatus(formatter.Dim("No users configured."))
	}
	f := &scheduleFields{date: state.App.today().String()}
	form := scheduleForm(userID, f)
	done := func() tea.Cmd {
		return func() tea.Msg { return applySchedule(state.App, userID, f) }
	}
	return pushView(newWizardView("Add topic", form, done))
}
