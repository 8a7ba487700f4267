package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "A client with heart failure is prescribed furosemide. Which finding should the nurse report immediately?",
		"options": ["Potassium 2.9 mEq/L", "Urine output 80 mL/hr", "Weight loss of 0.5 kg", "Blood pressure 128/76"],
		"correctAnswer": 0,
		"explanation": "Furosemide is potassium-wasting; 2.9 mEq/L is hypokalemic and risks dysrhythmia. The other findings are expected effects."
	}`)
}

func testInput() GenerateInput {
	return GenerateInput{
		Topic:      "cardiac pharmacology",
		Difficulty: DifficultyMedium,
		Index:      0,
		Count:      5,
	}
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectIndex != 0 {
		t.Errorf("expected correct index 0, got %d", q.CorrectIndex)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Difficulty != DifficultyMedium {
		t.Errorf("expected difficulty stamped from input, got %q", q.Difficulty)
	}
	if q.ID != "" {
		t.Errorf("generator must not assign IDs, got %q", q.ID)
	}
}

func TestGenerate_SendsSchemaAndPosition(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	input := testInput()
	input.Index = 2
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Errorf("expected question schema on request")
	}
	if got := req.Messages[0].Content; !strings.Contains(got, "question 3 of 5") {
		t.Errorf("expected position in prompt, got %q", got)
	}
}

func TestGenerate_InvalidStructure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"Q?","options":["a","b"],"correctAnswer":0,"explanation":"because"}`),
	})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}
