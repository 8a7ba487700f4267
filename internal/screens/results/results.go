// Package results shows a finished session: the score and the corrections
// review with rationale for every question in the graded window.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
	"github.com/Mr-Gerald/graceful-path-web/internal/screen"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/components"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/layout"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/theme"
)

// ResultsScreen displays the score and corrections for a finished session.
type ResultsScreen struct {
	session     *assessment.Session
	corrections []assessment.Correction
	offset      int // index of the first correction shown
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for the given session.
func New(session *assessment.Session) *ResultsScreen {
	return &ResultsScreen{
		session:     session,
		corrections: session.Corrections(),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll review"},
		{Key: "Enter", Description: "Back to tests"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.corrections)-1 {
			r.offset++
		}
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	sess := r.session
	var b strings.Builder

	score := sess.Score()
	correct := 0
	for _, c := range r.corrections {
		if c.Correct {
			correct++
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Test complete!"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Score: %d%%        Correct: %d of %d", score, correct, sess.AllowedQuestions())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("  Score", float64(score)/100, true, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Corrections review, scrolled to the current offset. Each entry is
	// roughly 5 lines; show as many as fit.
	perEntry := 5
	visible := layout.ContentHeight(height) / perEntry
	if visible < 1 {
		visible = 1
	}
	end := r.offset + visible
	if end > len(r.corrections) {
		end = len(r.corrections)
	}

	for i := r.offset; i < end; i++ {
		b.WriteString(r.renderCorrection(i, width))
	}

	if end < len(r.corrections) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ... %d more, scroll down", len(r.corrections)-end)))
	}

	return b.String()
}

func (r *ResultsScreen) renderCorrection(i, width int) string {
	c := r.corrections[i]
	q := c.Question

	var b strings.Builder

	verdict := theme.Incorrect.Render("✗")
	if c.Correct {
		verdict = theme.Correct.Render("✓")
	}
	b.WriteString(fmt.Sprintf("\n  %s %s\n", verdict,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
			fmt.Sprintf("Q%d. %s", i+1, q.Prompt))))

	yourAnswer := "not answered"
	if c.UserAnswer != assessment.NoAnswer {
		yourAnswer = q.Options[c.UserAnswer]
	}
	if c.Correct {
		b.WriteString("      " + theme.Correct.Render("Your answer: "+yourAnswer) + "\n")
	} else {
		b.WriteString("      " + theme.Incorrect.Render("Your answer: "+yourAnswer) + "\n")
		b.WriteString("      " + theme.Correct.Render("Correct: "+q.Options[q.CorrectIndex]) + "\n")
	}

	b.WriteString("      " + lipgloss.NewStyle().
		Width(width-8).
		Foreground(theme.TextDim).
		Render("Rationale: "+q.Explanation) + "\n")

	return b.String()
}
