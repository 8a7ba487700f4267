package quizgen

import "github.com/Mr-Gerald/graceful-path-web/internal/llm"

// QuestionSchema defines the JSON schema for generated assessment questions.
// Field names follow the wire format persisted in the content store.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single NCLEX-style multiple choice question with rationale",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The clinical scenario and question stem",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer choices",
			},
			"correctAnswer": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option (0-3)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Detailed clinical rationale for the correct answer",
			},
		},
		"required":             []any{"question", "options", "correctAnswer", "explanation"},
		"additionalProperties": false,
	},
}
