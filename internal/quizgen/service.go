package quizgen

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/google/uuid"
)

// OnQuestion receives each accepted question as soon as it is produced,
// before the next item starts. Callbacks run synchronously on the
// generation goroutine so an editor UI can append items live.
type OnQuestion func(Question)

// OnProgress receives human-readable status updates. Separate from the
// data channel: progress fires for items that later fail validation too.
type OnProgress func(string)

// Service runs the question-generation pipeline: count sequential
// single-question generations with per-item failure tolerance.
type Service struct {
	generator Generator
}

// NewService creates a generation pipeline over the given generator.
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Generate produces up to req.Count validated questions, invoking
// onQuestion for each accepted item and onProgress with status updates.
// Items are generated strictly one at a time: the provider's rate limits
// are the bottleneck, and serializing keeps the live-streaming UX.
//
// A run always returns whatever it produced. Individual item failures
// (invalid response, quota exhausted across the whole pool) are logged
// and skipped; producing fewer than req.Count questions is a normal
// outcome the caller must check for. Only a missing credential pool or
// context cancellation ends the run early, and both still return the
// questions already streamed.
func (s *Service) Generate(ctx context.Context, req GenerateRequest, onQuestion OnQuestion, onProgress OnProgress) ([]Question, error) {
	progress := func(msg string) {
		if onProgress != nil {
			onProgress(msg)
		}
	}

	progress(fmt.Sprintf("Brainstorming %d clinical scenarios on %s...", req.Count, req.Topic))

	questions := make([]Question, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		// Cancellation takes effect only between items, never mid-item.
		if err := ctx.Err(); err != nil {
			return questions, err
		}

		progress(fmt.Sprintf("Generating question %d of %d...", i+1, req.Count))

		q, err := s.generator.Generate(ctx, GenerateInput{
			Topic:      req.Topic,
			Difficulty: req.Difficulty,
			Index:      i,
			Count:      req.Count,
		})
		if err != nil {
			if errors.Is(err, keypool.ErrNoCredentials) {
				progress("No API keys configured. Add keys in the admin panel.")
				return questions, err
			}
			// Skip this item and keep going; the shortfall shows up in
			// the returned length.
			fmt.Fprintf(os.Stderr, "warning: question %d of %d failed: %v\n", i+1, req.Count, err)
			continue
		}

		q.ID = uuid.New().String()

		questions = append(questions, *q)
		if onQuestion != nil {
			onQuestion(*q)
		}
	}

	return questions, nil
}
