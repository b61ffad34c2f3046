package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/recall/internal/cli/formatter"
	"github.com/alexanderramin/recall/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type agendaLoadedMsg struct {
	userID string
	today  domain.Date
	items  []domain.Item
	err    error
}

var agendaKeys = struct {
	Next, Prev, Add, Refresh key.Binding
}{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next user")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev user")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add topic")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}

// agendaView shows the selected user's upcoming reviews.
type agendaView struct {
	state   *SharedState
	userID  string
	today   domain.Date
	items   []domain.Item
	loading bool
	err     error
	status  string
}

func newAgendaView(state *SharedState) *agendaView {
	return &agendaView{state: state, loading: true}
}

func (v *agendaView) ID() ViewID    { return ViewAgenda }
func (v *agendaView) Title() string { return "Agenda" }

func (v *agendaView) ShortHelp() []key.Binding {
	return []key.Binding{agendaKeys.Next, agendaKeys.Add, agendaKeys.Refresh}
}

func (v *agendaView) Init() tea.Cmd {
	return v.load()
}

func (v *agendaView) load() tea.Cmd {
	app := v.state.App
	userID := v.state.ActiveUser()
	today := app.today()
	return func() tea.Msg {
		items, err := app.Agenda.Agenda(context.Background(), userID, today)
		return agendaLoadedMsg{userID: userID, today: today, items: items, err: err}
	}
}

func (v *agendaView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agendaLoadedMsg:
		// Drop results for a user the selection has already moved past.
		if msg.userID != v.state.ActiveUser() {
			return v, nil
		}
		v.loading = false
		v.userID, v.today, v.items, v.err = msg.userID, msg.today, msg.items, msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case statusMsg:
		v.status = msg.text
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, agendaKeys.Next):
			return v.switchUser(1)
		case key.Matches(msg, agendaKeys.Prev):
			return v.switchUser(-1)
		case key.Matches(msg, agendaKeys.Add):
			v.status = ""
			return v, startScheduleWizard(v.state)
		case key.Matches(msg, agendaKeys.Refresh):
			return v, v.load()
		}
	}
	return v, nil
}

func (v *agendaView) switchUser(delta int) (tea.Model, tea.Cmd) {
	v.state.CycleUser(delta)
	v.loading = true
	v.status = ""
	return v, v.load()
}

func (v *agendaView) View() string {
	var b strings.Builder
	b.WriteString(v.renderUserTabs())
	b.WriteString("\n\n")

	switch {
	case v.state.ActiveUser() == "":
		b.WriteString(formatter.Dim("No users configured."))
		b.WriteString("\n")
	case v.loading:
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.FormatAgenda(v.userID, v.today, v.items))
	}

	if v.status != "" {
		b.WriteString("\n")
		b.WriteString(v.status)
		b.WriteString("\n")
	}
	return b.String()
}

func (v *agendaView) renderUserTabs() string {
	tabs := make([]string, 0, len(v.state.Users)+1)
	tabs = append(tabs, formatter.Dim("User:"))
	for i, id := range v.state.Users {
		if i == v.state.Selected {
			tabs = append(tabs, formatter.StyleHeader.Render("["+id+"]"))
			continue
		}
		tabs = append(tabs, formatter.Dim(" "+id+" "))
	}
	return strings.Join(tabs, " ")
}
