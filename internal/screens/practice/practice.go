// Package practice implements the active test-taking screen. It drives an
// assessment session: one question at a time, answer selection, the free
// tier paywall, and the hand-off to the results screen.
package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
	"github.com/Mr-Gerald/graceful-path-web/internal/screen"
	"github.com/Mr-Gerald/graceful-path-web/internal/screens/results"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/components"
	"github.com/Mr-Gerald/graceful-path-web/internal/ui/layout"
)

// paywall dialog choices
const (
	choiceUpgrade = iota
	choiceSeeResults
)

// PracticeScreen runs one assessment session.
type PracticeScreen struct {
	session *assessment.Session
	options components.OptionList

	paywallChoice int
	upgradeNote   bool
	errMsg        string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New starts a session over the given test.
func New(test *content.PracticeTest, entitled bool) *PracticeScreen {
	s := &PracticeScreen{}
	sess, err := assessment.Start(test, entitled)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = sess
	s.options = components.NewOptionList(sess.CurrentQuestion().Options)
	return s
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	if p.session != nil {
		return p.session.Test().Title
	}
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.session != nil && p.session.Phase() == assessment.PhasePaywallBlocked {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Answer"},
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "Next"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || p.session == nil {
		return p, nil
	}

	switch p.session.Phase() {
	case assessment.PhaseInProgress:
		return p.updateQuestion(kmsg)
	case assessment.PhasePaywallBlocked:
		return p.updatePaywall(kmsg)
	}
	return p, nil
}

func (p *PracticeScreen) updateQuestion(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key := kmsg.String(); key == "n" || key == "right" {
		// Advancing requires a recorded answer; until then the key is inert,
		// mirroring the disabled Next button on the web player.
		if !p.options.Answered() {
			return p, nil
		}
		return p.advance()
	}

	var cmd tea.Cmd
	p.options, cmd = p.options.Update(kmsg)
	if p.options.Answered() {
		p.session.SelectAnswer(p.session.CurrentQuestion().ID, p.options.Chosen)
	}
	return p, cmd
}

// advance moves to the next question and reacts to the resulting phase.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	before := p.session.CurrentIndex()
	p.session.Advance()

	switch p.session.Phase() {
	case assessment.PhaseFinished:
		return p, p.showResults()
	case assessment.PhaseInProgress:
		if p.session.CurrentIndex() != before {
			p.options = components.NewOptionList(p.session.CurrentQuestion().Options)
		}
	}
	return p, nil
}

func (p *PracticeScreen) updatePaywall(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "left", "h", "right", "l", "tab":
		if p.paywallChoice == choiceUpgrade {
			p.paywallChoice = choiceSeeResults
		} else {
			p.paywallChoice = choiceUpgrade
		}
	case "enter":
		if p.paywallChoice == choiceSeeResults {
			p.session.ResolvePaywall(assessment.PaywallSeeResults)
			return p, p.showResults()
		}
		// Upgrading happens outside the player; the session stays put.
		p.session.ResolvePaywall(assessment.PaywallUpgrade)
		p.upgradeNote = true
	}
	return p, nil
}

func (p *PracticeScreen) showResults() tea.Cmd {
	sess := p.session
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(sess)}
	}
}
