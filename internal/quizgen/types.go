package quizgen

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Difficulty grades a question or practice test.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is one assessable unit: an NCLEX-style multiple-choice item.
type Question struct {
	// ID uniquely identifies the question within its test.
	ID string `json:"id"`

	// Prompt is the clinical scenario or question stem shown to the student.
	Prompt string `json:"question"`

	// Options holds exactly 4 answer choices in display order.
	Options []string `json:"options"`

	// CorrectIndex is the index into Options of the correct answer (0-3).
	CorrectIndex int `json:"correctAnswer"`

	// Explanation is the clinical rationale shown during corrections review.
	Explanation string `json:"explanation"`

	// Difficulty is stamped from the generation request, not model-assessed.
	Difficulty Difficulty `json:"difficulty"`
}

// GenerateRequest describes one generation run.
type GenerateRequest struct {
	// Topic is the clinical subject, e.g. "pharmacology" or "cardiac care".
	Topic string

	// Count is the number of questions requested. The run may produce
	// fewer; callers must check the returned length.
	Count int

	// Difficulty applies to every question in the run.
	Difficulty Difficulty
}

// GenerateInput carries the context for a single question within a run.
type GenerateInput struct {
	Topic      string
	Difficulty Difficulty

	// Index is the zero-based position of this question within the run.
	Index int

	// Count is the total requested for the run; with Index it lets the
	// prompt steer the model away from repeating earlier scenarios.
	Count int
}
