package quizgen

import "fmt"

// StructuralValidator checks that required fields are present, the option
// set is well formed, and the answer index is in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
		}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
		}
	}
	seen := make(map[string]bool, OptionCount)
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i),
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option: %q", opt),
			}
		}
		seen[opt] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correctAnswer %d out of range", q.CorrectIndex),
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
		}
	}
	return nil
}
