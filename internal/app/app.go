package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
	"github.com/Mr-Gerald/graceful-path-web/internal/screen"
	"github.com/Mr-Gerald/graceful-path-web/internal/screens/home"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	entitled bool
	width    int
	height   int
}

// newAppModel creates a new AppModel with the test picker as root screen.
func newAppModel(tests content.TestRepo, entitled bool) AppModel {
	return AppModel{
		router:   router.New(home.New(tests, entitled)),
		entitled: entitled,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	plan := "Free plan"
	if m.entitled {
		plan = "Premium"
	}
	header := layout.RenderHeader(title, plan, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints[len(footerHints)-1])
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the terminal player over the given test repository.
func Run(tests content.TestRepo, entitled bool) error {
	p := tea.NewProgram(newAppModel(tests, entitled))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
