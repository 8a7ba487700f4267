package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/ui/layout"
)

// Screen is one view in the practice player: the test picker, the active
// test, the results review. The router owns the stack of screens; the app
// model wraps the active one with the shared header and footer.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the resulting screen and command.
	// Navigation happens by returning router messages from the command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. Width and height are the space left
	// after the frame's header and footer.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key bindings in the footer.
// The practice screen swaps hints when the paywall dialog is up.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
