package cli

// SharedState is the context every view sees through a pointer.
type SharedState struct {
	App *App

	Users    []string
	Selected int

	// Terminal dimensions
	Width  int
	Height int
}

// ActiveUser returns the selected user ID, or "" when none are configured.
func (s *SharedState) ActiveUser() string {
	if len(s.Users) == 0 {
		return ""
	}
	return s.Users[s.Selected]
}

// CycleUser moves the selection by delta, wrapping at both ends.
func (s *SharedState) CycleUser(delta int) {
	n := len(s.Users)
	if n == 0 {
		return
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
}

// ContentHeight is the height left for the active view after the header
// (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}
