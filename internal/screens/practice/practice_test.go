package practice

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
	"github.com/Mr-Gerald/graceful-path-web/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testBank(n int) *content.PracticeTest {
	t := &content.PracticeTest{ID: "t1", Title: "Med-Surg Review"}
	for i := 0; i < n; i++ {
		t.Questions = append(t.Questions, quizgen.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Scenario %d?", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Explanation:  "rationale",
		})
	}
	return t
}

func TestPracticeScreen_Title(t *testing.T) {
	p := New(testBank(5), true)
	if p.Title() != "Med-Surg Review" {
		t.Errorf("Title = %q, want test title", p.Title())
	}
}

func TestPracticeScreen_EmptyBank(t *testing.T) {
	p := New(&content.PracticeTest{ID: "x", Title: "Empty"}, true)
	view := p.View(80, 24)
	if view == "" {
		t.Error("expected error view for empty test")
	}
}

func TestPracticeScreen_NextRequiresAnswer(t *testing.T) {
	p := New(testBank(3), true)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('n'))
	ps := scr.(*PracticeScreen)
	if ps.session.CurrentIndex() != 0 {
		t.Fatalf("unanswered N must not advance, cursor = %d", ps.session.CurrentIndex())
	}
	scr, _ = ps.Update(specialKey(tea.KeyRight))
	ps = scr.(*PracticeScreen)
	if ps.session.CurrentIndex() != 0 {
		t.Fatalf("unanswered right arrow must not advance, cursor = %d", ps.session.CurrentIndex())
	}

	// Once an answer lands, the same key works.
	scr, _ = ps.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.session.CurrentIndex() != 1 {
		t.Fatalf("answered N must advance, cursor = %d", ps.session.CurrentIndex())
	}
}

func TestPracticeScreen_AnswerAndAdvance(t *testing.T) {
	p := New(testBank(5), true)

	// Select option 2 with a digit key.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('2'))
	ps := scr.(*PracticeScreen)
	if got := ps.session.Answer("q1"); got != 1 {
		t.Fatalf("expected answer 1 recorded, got %d", got)
	}

	// Advance with N.
	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.session.CurrentIndex() != 1 {
		t.Fatalf("expected cursor 1, got %d", ps.session.CurrentIndex())
	}
	if ps.options.Answered() {
		t.Error("option list must reset for the new question")
	}
}

func TestPracticeScreen_FreeTierPaywall(t *testing.T) {
	p := New(testBank(20), false)

	var scr screen.Screen = p
	for i := 0; i < assessment.FreeQuestionLimit; i++ {
		scr, _ = scr.Update(keyPress('1'))
		scr, _ = scr.Update(keyPress('n'))
	}
	ps := scr.(*PracticeScreen)
	if ps.session.Phase() != assessment.PhasePaywallBlocked {
		t.Fatalf("expected paywall, got %v", ps.session.Phase())
	}

	view := ps.View(80, 24)
	if !strings.Contains(view, "free limit") {
		t.Errorf("paywall view missing limit message:\n%s", view)
	}

	// Choosing "See My Results" finishes the session and pushes results.
	scr, _ = ps.Update(specialKey(tea.KeyRight))
	ps = scr.(*PracticeScreen)
	_, cmd := ps.Update(specialKey(tea.KeyEnter))
	if ps.session.Phase() != assessment.PhaseFinished {
		t.Fatalf("expected finished, got %v", ps.session.Phase())
	}
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestPracticeScreen_UpgradeKeepsSessionBlocked(t *testing.T) {
	p := New(testBank(16), false)

	var scr screen.Screen = p
	for i := 0; i < assessment.FreeQuestionLimit; i++ {
		scr, _ = scr.Update(keyPress('1'))
		scr, _ = scr.Update(keyPress('n'))
	}
	ps := scr.(*PracticeScreen)

	// Default paywall choice is Upgrade; Enter must not end the session.
	scr, _ = ps.Update(specialKey(tea.KeyEnter))
	ps = scr.(*PracticeScreen)
	if ps.session.Phase() != assessment.PhasePaywallBlocked {
		t.Fatalf("upgrade must keep the session blocked, got %v", ps.session.Phase())
	}
	if !ps.upgradeNote {
		t.Error("expected the upgrade note to show")
	}
}

func TestPracticeScreen_SmallTestFinishes(t *testing.T) {
	p := New(testBank(2), false)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('1'))
	scr, _ = scr.Update(keyPress('n'))
	ps := scr.(*PracticeScreen)
	scr, cmd := ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)

	if ps.session.Phase() != assessment.PhaseFinished {
		t.Fatalf("expected finished, got %v", ps.session.Phase())
	}
	if cmd == nil {
		t.Fatal("expected results push command")
	}
}
