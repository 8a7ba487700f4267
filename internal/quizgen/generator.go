package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

// Generator produces a single assessment question per call.
type Generator interface {
	// Generate produces one validated Question for the given input context.
	// All configured validators run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// LLMGenerator implements Generator using a provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw model response before validation.
type questionOutput struct {
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctAnswer"`
	Explanation  string   `json:"explanation"`
}

// Generate produces one question for the given input context.
// The caller assigns the ID; difficulty is stamped from the input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	q := &Question{
		Prompt:       raw.Prompt,
		Options:      raw.Options,
		CorrectIndex: raw.CorrectIndex,
		Explanation:  raw.Explanation,
		Difficulty:   input.Difficulty,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
