// Package home implements the test picker: the first screen of the
// terminal player, listing stored practice tests.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
	"github.com/Mr-Gerald/graceful-path-web/internal/screen"
	"github.com/Mr-Gerald/graceful-path-web/internal/screens/practice"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/components"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/layout"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/theme"
)

// testsLoadedMsg carries the result of the background store read.
type testsLoadedMsg struct {
	Tests []*content.PracticeTest
	Err   error
}

// HomeScreen lists the stored practice tests and starts sessions.
type HomeScreen struct {
	repo     content.TestRepo
	entitled bool

	loading bool
	spinner components.Spinner
	menu    components.Menu
	tests   []*content.PracticeTest
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the test picker. Tests load asynchronously on Init.
func New(repo content.TestRepo, entitled bool) *HomeScreen {
	return &HomeScreen{
		repo:     repo,
		entitled: entitled,
		loading:  true,
		spinner:  components.NewSpinner("Loading practice tests..."),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.spinner.Init(), h.loadTests())
}

func (h *HomeScreen) Title() string {
	return "Practice Tests"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start test"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) loadTests() tea.Cmd {
	return func() tea.Msg {
		tests, err := h.repo.List(context.Background())
		return testsLoadedMsg{Tests: tests, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testsLoadedMsg:
		h.loading = false
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.tests = msg.Tests
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case tea.KeyMsg:
		if h.loading || h.errMsg != "" {
			return h, nil
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}

	if h.loading {
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd
	}

	return h, nil
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.tests))
	for _, t := range h.tests {
		test := t
		locked := assessment.TestLocked(test, h.entitled)

		label := fmt.Sprintf("%s — %d questions", test.Title, len(test.Questions))
		if test.Duration != "" {
			label += fmt.Sprintf(" (%s)", test.Duration)
		}
		if locked {
			label += "  [Premium]"
		}

		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: locked || len(test.Questions) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(test, h.entitled)}
				}
			},
		})
	}
	return items
}

func (h *HomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if h.loading {
		return "\n\n" + center.Render(h.spinner.View())
	}
	if h.errMsg != "" {
		return "\n\n" + center.Foreground(theme.Error).Render(h.errMsg)
	}
	if len(h.tests) == 0 {
		return "\n\n" + center.Render(theme.Hint.Render(
			"No practice tests yet.\nGenerate one with: graceful generate --topic \"...\""))
	}

	var s string
	s += "\n" + theme.Title.Width(width).Render("Choose a practice test") + "\n\n"
	s += h.menu.View()
	if !h.entitled {
		s += "\n" + center.Render(theme.Hint.Render(
			fmt.Sprintf("Free plan: first %d questions of easy tests. Run with --premium for full access.",
				assessment.FreeQuestionLimit)))
	}
	return s
}
