package assessment

import (
	"errors"
	"math"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

// FreeQuestionLimit is the number of questions a free-tier session may
// answer before the paywall interrupts. The wall check, the score
// denominator, the corrections range, and progress displays all derive
// from this one constant.
const FreeQuestionLimit = 15

// NoAnswer marks an unanswered question in a Correction.
const NoAnswer = -1

// ErrEmptyQuestionBank is returned by Start for a test with no questions.
// The session never begins; callers present a "no content" state instead.
var ErrEmptyQuestionBank = errors.New("practice test has no questions")

// Phase is the lifecycle state of an assessment session.
type Phase string

const (
	PhaseInProgress     Phase = "in_progress"
	PhasePaywallBlocked Phase = "paywall_blocked"
	PhaseFinished       Phase = "finished"
)

// PaywallAction is the student's choice on the paywall screen.
type PaywallAction string

const (
	// PaywallUpgrade routes to the external upgrade flow. The session
	// stays blocked; resolution happens outside the engine.
	PaywallUpgrade PaywallAction = "upgrade"

	// PaywallSeeResults finishes the session with the score computed over
	// the questions answered so far.
	PaywallSeeResults PaywallAction = "seeResults"
)

// Correction is one row of the post-attempt review.
type Correction struct {
	Question   quizgen.Question
	UserAnswer int // NoAnswer when the question was skipped
	Correct    bool
}

// Session is one student's attempt at a practice test. It is ephemeral:
// abandoning the attempt simply discards the value. The test is shared,
// read-only input; the session never mutates it.
type Session struct {
	test         *content.PracticeTest
	currentIndex int
	answers      map[string]int
	entitled     bool
	phase        Phase
}

// Start begins a session over the given test. Entitled students see the
// whole bank; free-tier students are capped at FreeQuestionLimit questions.
func Start(test *content.PracticeTest, entitled bool) (*Session, error) {
	if test == nil || len(test.Questions) == 0 {
		return nil, ErrEmptyQuestionBank
	}
	return &Session{
		test:     test,
		answers:  make(map[string]int),
		entitled: entitled,
		phase:    PhaseInProgress,
	}, nil
}

// TestLocked reports whether a test is out of reach for the student's
// tier. Free-tier students may only open easy tests.
func TestLocked(test *content.PracticeTest, entitled bool) bool {
	if entitled {
		return false
	}
	return test.Difficulty == quizgen.DifficultyMedium || test.Difficulty == quizgen.DifficultyHard
}

// Phase returns the session's lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// CurrentIndex returns the cursor into the question bank.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// CurrentQuestion returns the question at the cursor.
func (s *Session) CurrentQuestion() quizgen.Question {
	return s.test.Questions[s.currentIndex]
}

// Entitled reports whether the session holds a premium entitlement.
func (s *Session) Entitled() bool { return s.entitled }

// Test returns the test under attempt.
func (s *Session) Test() *content.PracticeTest { return s.test }

// Answer returns the recorded answer for a question id, or NoAnswer.
func (s *Session) Answer(questionID string) int {
	if idx, ok := s.answers[questionID]; ok {
		return idx
	}
	return NoAnswer
}

// Answered reports whether the current question has a recorded answer.
// The UI uses this to gate Advance.
func (s *Session) Answered() bool {
	_, ok := s.answers[s.CurrentQuestion().ID]
	return ok
}

// SelectAnswer records or overwrites the student's choice for a question.
// Option range is the UI's concern; the engine stores what it is given.
func (s *Session) SelectAnswer(questionID string, optionIndex int) {
	s.answers[questionID] = optionIndex
}

// Advance moves to the next question, or transitions the session out of
// PhaseInProgress:
//
//   - a free-tier session that has just answered its last allowed question
//     hits the paywall and the cursor stays put
//   - the last question of the bank finishes the session
//   - otherwise the cursor moves forward one
//
// Advance outside PhaseInProgress is a no-op.
func (s *Session) Advance() {
	if s.phase != PhaseInProgress {
		return
	}
	if !s.entitled && s.currentIndex == FreeQuestionLimit-1 {
		s.phase = PhasePaywallBlocked
		return
	}
	if s.currentIndex == len(s.test.Questions)-1 {
		s.phase = PhaseFinished
		return
	}
	s.currentIndex++
}

// ResolvePaywall applies the student's choice on the paywall screen.
// Only meaningful in PhasePaywallBlocked; a no-op elsewhere.
func (s *Session) ResolvePaywall(action PaywallAction) {
	if s.phase != PhasePaywallBlocked {
		return
	}
	if action == PaywallSeeResults {
		s.phase = PhaseFinished
	}
	// PaywallUpgrade: the upgrade flow is external; the session stays
	// blocked until the student picks seeResults or abandons it.
}

// AllowedQuestions returns the number of questions this session may score
// against: the whole bank for entitled students, at most FreeQuestionLimit
// otherwise.
func (s *Session) AllowedQuestions() int {
	if s.entitled {
		return len(s.test.Questions)
	}
	return min(FreeQuestionLimit, len(s.test.Questions))
}

// Score computes the percentage of correct answers over the allowed
// window, rounded to the nearest integer. Unanswered questions in the
// window count as incorrect. A zero-question window scores 0 rather than
// dividing by zero (unreachable given the Start precondition).
func (s *Session) Score() int {
	allowed := s.AllowedQuestions()
	if allowed == 0 {
		return 0
	}
	correct := 0
	for _, q := range s.test.Questions[:allowed] {
		if idx, ok := s.answers[q.ID]; ok && idx == q.CorrectIndex {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(allowed)))
}

// Corrections returns the post-attempt review rows for the allowed window.
// It never mutates the session; repeated calls yield identical output.
func (s *Session) Corrections() []Correction {
	allowed := s.AllowedQuestions()
	out := make([]Correction, 0, allowed)
	for _, q := range s.test.Questions[:allowed] {
		c := Correction{Question: q, UserAnswer: NoAnswer}
		if idx, ok := s.answers[q.ID]; ok {
			c.UserAnswer = idx
			c.Correct = idx == q.CorrectIndex
		}
		out = append(out, c)
	}
	return out
}
