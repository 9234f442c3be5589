package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dojo/internal/ui/layout"
)

// Screen is what the router stacks: home, battle, debate, review.
// The frame (header and footer) is drawn around it by the app model.
type Screen interface {
	// Init runs once when the screen enters the stack.
	Init() tea.Cmd

	// Update handles one message and returns the screen to keep.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content region only, sized to the space
	// between header and footer.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with
// its own bindings.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatsProvider is an optional interface for screens that have a live
// score and streak to show in the header.
type StatsProvider interface {
	HeaderStats() (score, streak int)
}
