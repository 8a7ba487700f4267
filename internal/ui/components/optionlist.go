package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/ui/theme"
)

// OptionList is the answer selector for a multiple-choice question. It
// tracks the highlighted option and the committed choice separately, so a
// student can change their answer before moving on. It never reveals the
// correct answer; rationale review happens on the results screen.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // committed answer, -1 when unanswered
}

// NewOptionList creates an option list with no committed answer.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options, Chosen: -1}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection keys. Digits 1-4 jump-select.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(o.Options) {
				o.Cursor = i
				o.Chosen = i
			}
		}
	}

	return o, nil
}

// Answered reports whether an option has been committed.
func (o OptionList) Answered() bool {
	return o.Chosen >= 0
}

// View renders the options with the cursor and committed choice marked.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		marker := "( )"
		if i == o.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
