package cli

import (
	"testing"

	"github.com/alexanderramin/recall/internal/teatest"
)

// TestDriver adds view-stack inspection to teatest.Driver.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the app model for app and drains its Init, which
// loads the first user's agenda synchronously from in-memory SQLite.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	m := newAppModel(app, []string{"1", "2", "3", "4", "5"})
	return &TestDriver{Driver: teatest.New(t, m, teatest.WithSize(120, 40))}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
