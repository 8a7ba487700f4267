// Package studyplan generates week-by-week study schedules targeted at a
// student's weak areas and exam date.
package studyplan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

// Week is one week of the generated schedule.
type Week struct {
	Week  int      `json:"week"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Plan is a full study schedule, ordered by week.
type Plan struct {
	Weeks []Week `json:"plan"`
}

// PlanSchema is the JSON Schema study plans must conform to.
var PlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A week-by-week clinical study schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week":  map[string]any{"type": "integer", "minimum": 1},
						"focus": map[string]any{"type": "string"},
						"tasks": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"week", "focus", "tasks"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"plan"},
		"additionalProperties": false,
	},
}

// Service builds study plans over a structured-output provider.
type Service struct {
	provider llm.Provider
}

// New creates a study plan service backed by the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Generate produces a schedule covering the given weak areas up to the exam
// date. At least one weak area is required; the exam date is free-form text
// passed through to the model.
func (s *Service) Generate(ctx context.Context, weakAreas []string, examDate string) (*Plan, error) {
	if len(weakAreas) == 0 {
		return nil, fmt.Errorf("generate study plan: no weak areas given")
	}

	prompt := fmt.Sprintf(
		"Generate a structured clinical study plan focusing on: %s.\nThe target exam date is %s.",
		strings.Join(weakAreas, ", "), examDate,
	)

	ctx = llm.WithPurpose(ctx, "study-plan")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    "You are a clinical nursing exam coach for Graceful Path Global Health. Build realistic weekly study schedules.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    PlanSchema,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("generate study plan: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal(resp.Content, &plan); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse study plan: %w", err),
		}
	}
	if len(plan.Weeks) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("study plan has no weeks"),
		}
	}
	return &plan, nil
}
