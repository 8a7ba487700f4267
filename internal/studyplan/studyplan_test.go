package studyplan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

const validPlan = `{
	"plan": [
		{"week": 1, "focus": "Pharmacology", "tasks": ["Review cardiac meds", "50 practice questions"]},
		{"week": 2, "focus": "Fluid and electrolytes", "tasks": ["Flashcards", "Case studies"]}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validPlan)})
	svc := New(mock)

	plan, err := svc.Generate(context.Background(), []string{"Pharmacology", "Fluid and electrolytes"}, "2026-11-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(plan.Weeks))
	}
	if plan.Weeks[0].Week != 1 || plan.Weeks[0].Focus != "Pharmacology" {
		t.Errorf("week 1 mismatch: %+v", plan.Weeks[0])
	}
	if len(plan.Weeks[1].Tasks) != 2 {
		t.Errorf("week 2 tasks mismatch: %+v", plan.Weeks[1])
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "study-plan" {
		t.Error("request must carry the study-plan schema")
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Pharmacology, Fluid and electrolytes") {
		t.Errorf("weak areas missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "2026-11-01") {
		t.Errorf("exam date missing from prompt: %q", prompt)
	}
}

func TestGenerate_NoWeakAreas(t *testing.T) {
	svc := New(llm.NewMockProvider())
	if _, err := svc.Generate(context.Background(), nil, "2026-11-01"); err == nil {
		t.Fatal("expected error without weak areas")
	}
}

func TestGenerate_EmptyPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"plan": []}`)})
	svc := New(mock)

	_, err := svc.Generate(context.Background(), []string{"Pediatrics"}, "soon")
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
