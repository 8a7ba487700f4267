package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with platform styling, for screens that
// load data in the background.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with a label shown next to it.
func NewSpinner(label string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Model: s, Label: label}
}

// Init starts the spinner ticking.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update handles tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	return s.Model.View() + " " + theme.Hint.Render(s.Label)
}
