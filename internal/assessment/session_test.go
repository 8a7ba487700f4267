package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

// bank builds a test with n questions whose correct answer is always
// option 2.
func bank(n int) *content.PracticeTest {
	t := &content.PracticeTest{
		ID:       "test-1",
		Title:    "Foundational NCLEX Review",
		Duration: "120 mins",
	}
	for i := 0; i < n; i++ {
		t.Questions = append(t.Questions, quizgen.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Scenario %d?", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 2,
			Explanation:  "rationale",
			Difficulty:   quizgen.DifficultyEasy,
		})
	}
	return t
}

// answerAndAdvance answers the current question (correctly when right is
// true) and advances.
func answerAndAdvance(s *Session, right bool) {
	idx := 2
	if !right {
		idx = 0
	}
	s.SelectAnswer(s.CurrentQuestion().ID, idx)
	s.Advance()
}

func TestStart_EmptyBank(t *testing.T) {
	_, err := Start(bank(0), false)
	if !errors.Is(err, ErrEmptyQuestionBank) {
		t.Fatalf("expected ErrEmptyQuestionBank, got %v", err)
	}
	_, err = Start(nil, true)
	if !errors.Is(err, ErrEmptyQuestionBank) {
		t.Fatalf("expected ErrEmptyQuestionBank for nil test, got %v", err)
	}
}

// Scenario: 20 questions, free tier, all 15 allowed answered correctly.
func TestFreeTier_PaywallAtBoundary(t *testing.T) {
	s, err := Start(bank(20), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < FreeQuestionLimit; i++ {
		if s.Phase() != PhaseInProgress {
			t.Fatalf("question %d: expected in progress, got %v", i+1, s.Phase())
		}
		if s.CurrentIndex() != i {
			t.Fatalf("question %d: cursor at %d", i+1, s.CurrentIndex())
		}
		answerAndAdvance(s, true)
	}

	if s.Phase() != PhasePaywallBlocked {
		t.Fatalf("expected paywall after question %d, got %v", FreeQuestionLimit, s.Phase())
	}
	// The wall does not move the cursor: question 16 is never reachable.
	if s.CurrentIndex() != FreeQuestionLimit-1 {
		t.Fatalf("cursor moved past the wall: %d", s.CurrentIndex())
	}
	if got := s.Score(); got != 100 {
		t.Fatalf("expected score 100, got %d", got)
	}

	// Advance must not escape the paywall.
	s.Advance()
	if s.Phase() != PhasePaywallBlocked || s.CurrentIndex() != FreeQuestionLimit-1 {
		t.Fatalf("advance escaped the paywall: phase=%v index=%d", s.Phase(), s.CurrentIndex())
	}
}

func TestResolvePaywall_Upgrade(t *testing.T) {
	s, _ := Start(bank(20), false)
	for i := 0; i < FreeQuestionLimit; i++ {
		answerAndAdvance(s, true)
	}

	// Upgrade routes externally; the session stays blocked.
	s.ResolvePaywall(PaywallUpgrade)
	if s.Phase() != PhasePaywallBlocked {
		t.Fatalf("upgrade must not change phase, got %v", s.Phase())
	}
}

func TestResolvePaywall_SeeResults(t *testing.T) {
	s, _ := Start(bank(20), false)
	for i := 0; i < FreeQuestionLimit; i++ {
		answerAndAdvance(s, true)
	}

	s.ResolvePaywall(PaywallSeeResults)
	if s.Phase() != PhaseFinished {
		t.Fatalf("expected finished, got %v", s.Phase())
	}
	if got := s.Score(); got != 100 {
		t.Fatalf("score changed on resolve: %d", got)
	}
	if got := len(s.Corrections()); got != FreeQuestionLimit {
		t.Fatalf("expected %d corrections, got %d", FreeQuestionLimit, got)
	}
}

// A bank at or under the limit never triggers the wall for free tier.
func TestFreeTier_SmallBankNeverBlocks(t *testing.T) {
	for _, n := range []int{10, FreeQuestionLimit} {
		s, _ := Start(bank(n), false)
		for i := 0; i < n; i++ {
			answerAndAdvance(s, true)
		}
		if s.Phase() != PhaseFinished {
			t.Fatalf("bank of %d: expected finished, got %v", n, s.Phase())
		}
	}
}

// Free tier with exactly 16 questions: the wall is the 15th answer.
func TestFreeTier_SixteenQuestionBank(t *testing.T) {
	s, _ := Start(bank(16), false)
	for i := 0; i < FreeQuestionLimit; i++ {
		answerAndAdvance(s, true)
	}
	if s.Phase() != PhasePaywallBlocked {
		t.Fatalf("expected paywall, got %v", s.Phase())
	}
}

func TestPremium_NeverBlocked(t *testing.T) {
	s, _ := Start(bank(20), true)
	for i := 0; i < 20; i++ {
		if s.Phase() == PhasePaywallBlocked {
			t.Fatalf("premium session hit the paywall at question %d", i+1)
		}
		answerAndAdvance(s, true)
	}
	if s.Phase() != PhaseFinished {
		t.Fatalf("expected finished, got %v", s.Phase())
	}
	if got := s.Score(); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScore_UnansweredCountWrong(t *testing.T) {
	s, _ := Start(bank(10), true)
	// Answer only the first 4, correctly.
	for i := 0; i < 4; i++ {
		answerAndAdvance(s, true)
	}
	// 4/10 = 40%.
	if got := s.Score(); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestScore_ZeroAnswersIsZero(t *testing.T) {
	s, _ := Start(bank(10), false)
	if got := s.Score(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScore_Rounds(t *testing.T) {
	s, _ := Start(bank(3), true)
	answerAndAdvance(s, true)
	answerAndAdvance(s, false)
	answerAndAdvance(s, false)
	// 1/3 → 33.33 → 33.
	if got := s.Score(); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}

	s2, _ := Start(bank(3), true)
	answerAndAdvance(s2, true)
	answerAndAdvance(s2, true)
	answerAndAdvance(s2, false)
	// 2/3 → 66.67 → 67.
	if got := s2.Score(); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

// Free-tier score ignores questions past the allowed window entirely.
func TestScore_FreeTierWindow(t *testing.T) {
	s, _ := Start(bank(20), false)
	for i := 0; i < FreeQuestionLimit; i++ {
		answerAndAdvance(s, i%2 == 0) // 8 right, 7 wrong
	}
	// 8/15 → 53.33 → 53.
	if got := s.Score(); got != 53 {
		t.Fatalf("expected 53, got %d", got)
	}
}

func TestSelectAnswer_Overwrites(t *testing.T) {
	s, _ := Start(bank(5), true)
	q := s.CurrentQuestion()
	s.SelectAnswer(q.ID, 0)
	s.SelectAnswer(q.ID, 2)
	if got := s.Answer(q.ID); got != 2 {
		t.Fatalf("expected overwrite to 2, got %d", got)
	}
	s.Advance()
	if got := s.Score(); got != 20 {
		t.Fatalf("expected 20 (1/5), got %d", got)
	}
}

func TestCorrections_Idempotent(t *testing.T) {
	s, _ := Start(bank(8), true)
	answerAndAdvance(s, true)
	answerAndAdvance(s, false)

	first := s.Corrections()
	second := s.Corrections()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("corrections changed between calls")
	}
	if s.Phase() != PhaseInProgress || s.CurrentIndex() != 2 {
		t.Fatalf("corrections mutated session state")
	}
}

func TestCorrections_Rows(t *testing.T) {
	s, _ := Start(bank(5), true)
	answerAndAdvance(s, true)  // q1 correct
	answerAndAdvance(s, false) // q2 wrong
	// q3-q5 unanswered

	rows := s.Corrections()
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if !rows[0].Correct || rows[0].UserAnswer != 2 {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Correct || rows[1].UserAnswer != 0 {
		t.Errorf("row 1: %+v", rows[1])
	}
	for i := 2; i < 5; i++ {
		if rows[i].UserAnswer != NoAnswer || rows[i].Correct {
			t.Errorf("row %d should be unanswered: %+v", i, rows[i])
		}
	}
}

func TestFinished_IsTerminal(t *testing.T) {
	s, _ := Start(bank(2), true)
	answerAndAdvance(s, true)
	answerAndAdvance(s, true)
	if s.Phase() != PhaseFinished {
		t.Fatalf("expected finished, got %v", s.Phase())
	}
	s.Advance()
	s.ResolvePaywall(PaywallSeeResults)
	if s.Phase() != PhaseFinished {
		t.Fatalf("finished must be terminal, got %v", s.Phase())
	}
}

func TestTestLocked(t *testing.T) {
	easy := bank(5)
	medium := bank(5)
	medium.Difficulty = quizgen.DifficultyMedium
	hard := bank(5)
	hard.Difficulty = quizgen.DifficultyHard

	if TestLocked(easy, false) {
		t.Errorf("easy tests are free-tier accessible")
	}
	if !TestLocked(medium, false) || !TestLocked(hard, false) {
		t.Errorf("medium/hard tests must be locked for free tier")
	}
	if TestLocked(medium, true) || TestLocked(hard, true) {
		t.Errorf("premium unlocks all difficulties")
	}
}
