package results

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Mr-Gerald/graceful-path-web/internal/assessment"
	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/Mr-Gerald/graceful-path-web/internal/router"
)

func finishedSession(t *testing.T) *assessment.Session {
	t.Helper()
	test := &content.PracticeTest{ID: "t1", Title: "Review"}
	for i := 0; i < 3; i++ {
		test.Questions = append(test.Questions, quizgen.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Scenario %d?", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Explanation:  "rationale",
		})
	}
	sess, err := assessment.Start(test, true)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sess.SelectAnswer("q1", 0) // correct
	sess.Advance()
	sess.SelectAnswer("q2", 3) // wrong
	sess.Advance()
	sess.Advance() // q3 unanswered, finishes
	return sess
}

func TestResultsScreen_Display(t *testing.T) {
	s := New(finishedSession(t))
	view := s.View(80, 40)

	if !strings.Contains(view, "Score: 33%") {
		t.Errorf("expected score line, got:\n%s", view)
	}
	if !strings.Contains(view, "Correct: 1 of 3") {
		t.Errorf("expected correct count, got:\n%s", view)
	}
	if !strings.Contains(view, "rationale") {
		t.Error("expected rationales in the review")
	}
	if !strings.Contains(view, "not answered") {
		t.Error("expected unanswered marker for q3")
	}
}

func TestResultsScreen_Scroll(t *testing.T) {
	s := New(finishedSession(t))

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("scrolling above the top must clamp, offset = %d", s.offset)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 1 {
		t.Errorf("expected offset 1, got %d", s.offset)
	}
}

func TestResultsScreen_BackToRoot(t *testing.T) {
	s := New(finishedSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatalf("expected PopToRootMsg, got %T", cmd())
	}
}
