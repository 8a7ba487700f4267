package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/components"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	if p.errMsg != "" {
		return "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.errMsg)
	}
	if p.session == nil {
		return ""
	}
	if p.session.Phase() == assessment.PhasePaywallBlocked {
		return p.renderPaywall(width)
	}
	return p.renderQuestion(width)
}

func (p *PracticeScreen) renderQuestion(width int) string {
	sess := p.session
	q := sess.CurrentQuestion()
	allowed := sess.AllowedQuestions()

	var b strings.Builder

	// Position line with progress bar.
	pos := fmt.Sprintf("  Question %d of %d", sess.CurrentIndex()+1, allowed)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(sess.CurrentIndex())/float64(allowed), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question stem.
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(p.options.View())

	if !p.options.Answered() {
		b.WriteString("\n" + theme.Hint.Render("  Pick an answer, then press N for the next question."))
	}

	return b.String()
}

func (p *PracticeScreen) renderPaywall(width int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("You've reached the free limit of %d questions", assessment.FreeQuestionLimit)))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Upgrade to premium to finish the full test, or see your results now."))
	b.WriteString("\n\n")

	upgrade := components.NewButton("Upgrade to Premium", p.paywallChoice == choiceUpgrade, nil)
	seeResults := components.NewButton("See My Results", p.paywallChoice == choiceSeeResults, nil)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, upgrade.View(), "   ", seeResults.View())
	b.WriteString(center.Render(buttons))

	if p.upgradeNote {
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Hint.Render(
			"Upgrades are handled on the website. Your progress here is kept.")))
	}

	return b.String()
}
