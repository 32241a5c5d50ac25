package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/versemind/internal/ui/layout"
)

// Screen is one view in the study flow (home menu, surah picker, review
// card, statistics). The router owns the stack; each screen only handles
// its own messages and renders its own content area.
type Screen interface {
	// Init runs when the screen is pushed, typically to start loading
	// its data (surah list, deck content).
	Init() tea.Cmd

	// Update handles one message and returns the screen to keep on the
	// stack, usually the receiver itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content between header and footer.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the router-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
