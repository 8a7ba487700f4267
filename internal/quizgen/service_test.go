package quizgen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
)

// scriptedGenerator returns canned results per call index.
type scriptedGenerator struct {
	results []func() (*Question, error)
	calls   int
	inputs  []GenerateInput
}

func (g *scriptedGenerator) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	g.inputs = append(g.inputs, input)
	i := g.calls
	g.calls++
	if i >= len(g.results) {
		return nil, errors.New("no more scripted results")
	}
	return g.results[i]()
}

func okResult(i int) func() (*Question, error) {
	return func() (*Question, error) {
		return &Question{
			Prompt:       fmt.Sprintf("Scenario %d?", i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
			Explanation:  "rationale",
		}, nil
	}
}

func failResult() func() (*Question, error) {
	return func() (*Question, error) {
		return nil, &ValidationError{Validator: "structural", Message: "question text is empty"}
	}
}

func TestGenerate_StreamsEachQuestion(t *testing.T) {
	gen := &scriptedGenerator{results: []func() (*Question, error){
		okResult(0), okResult(1), okResult(2),
	}}
	svc := NewService(gen)

	var streamed []Question
	questions, err := svc.Generate(context.Background(),
		GenerateRequest{Topic: "renal", Count: 3, Difficulty: DifficultyEasy},
		func(q Question) { streamed = append(streamed, q) },
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if len(streamed) != 3 {
		t.Fatalf("expected 3 onQuestion calls, got %d", len(streamed))
	}
	// The streamed sequence and the aggregate must agree, IDs included.
	for i := range questions {
		if questions[i].ID == "" {
			t.Errorf("question %d missing id", i)
		}
		if questions[i].ID != streamed[i].ID {
			t.Errorf("question %d: aggregate and streamed ids differ", i)
		}
		if questions[i].Difficulty != DifficultyEasy {
			t.Errorf("question %d: difficulty not stamped", i)
		}
	}
	// IDs must be unique within the run.
	if questions[0].ID == questions[1].ID {
		t.Errorf("expected unique ids")
	}
}

// A failing item is skipped, not fatal: the run returns the shortfall.
func TestGenerate_SkipsFailedItems(t *testing.T) {
	gen := &scriptedGenerator{results: []func() (*Question, error){
		okResult(0), okResult(1), failResult(), okResult(3), okResult(4),
	}}
	svc := NewService(gen)

	var streamed int
	var progress []string
	questions, err := svc.Generate(context.Background(),
		GenerateRequest{Topic: "pharmacology", Count: 5, Difficulty: DifficultyHard},
		func(Question) { streamed++ },
		func(msg string) { progress = append(progress, msg) },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	if streamed != 4 {
		t.Fatalf("expected onQuestion for accepted items only, got %d", streamed)
	}
	if len(progress) < 5 {
		t.Fatalf("expected progress for every item, got %d messages", len(progress))
	}
	if gen.calls != 5 {
		t.Fatalf("expected all 5 items attempted, got %d", gen.calls)
	}
}

func TestGenerate_SequentialInputs(t *testing.T) {
	gen := &scriptedGenerator{results: []func() (*Question, error){
		okResult(0), okResult(1),
	}}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(),
		GenerateRequest{Topic: "obstetrics", Count: 2, Difficulty: DifficultyMedium}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, in := range gen.inputs {
		if in.Index != i || in.Count != 2 {
			t.Errorf("input %d: got index=%d count=%d", i, in.Index, in.Count)
		}
		if in.Topic != "obstetrics" || in.Difficulty != DifficultyMedium {
			t.Errorf("input %d: request context not threaded through", i)
		}
	}
}

func TestGenerate_NoCredentialsIsFatal(t *testing.T) {
	gen := &scriptedGenerator{results: []func() (*Question, error){
		okResult(0),
		func() (*Question, error) { return nil, fmt.Errorf("generate: %w", keypool.ErrNoCredentials) },
	}}
	svc := NewService(gen)

	questions, err := svc.Generate(context.Background(),
		GenerateRequest{Topic: "renal", Count: 5, Difficulty: DifficultyEasy}, nil, nil)
	if !errors.Is(err, keypool.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
	// The question produced before the failure is still returned.
	if len(questions) != 1 {
		t.Fatalf("expected 1 question preserved, got %d", len(questions))
	}
	if gen.calls != 2 {
		t.Fatalf("expected run to stop after fatal error, got %d calls", gen.calls)
	}
}

func TestGenerate_CancelBetweenItems(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := &scriptedGenerator{results: []func() (*Question, error){
		func() (*Question, error) {
			cancel() // takes effect before the next item starts
			return okResult(0)()
		},
		okResult(1),
	}}
	svc := NewService(gen)

	questions, err := svc.Generate(ctx,
		GenerateRequest{Topic: "renal", Count: 2, Difficulty: DifficultyEasy}, nil, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected streamed question preserved, got %d", len(questions))
	}
	if gen.calls != 1 {
		t.Fatalf("expected no further items after cancel, got %d calls", gen.calls)
	}
}
