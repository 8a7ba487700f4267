package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a clinical nursing educator writing NCLEX-style practice questions for Graceful Path Global Health.

Rules:
- Write a single multiple choice question on the given topic at the given difficulty.
- The stem should describe a realistic clinical scenario and ask one focused question.
- Provide exactly 4 options. Exactly one is correct; the distractors should reflect plausible clinical misjudgments, not absurd choices.
- correctAnswer is the zero-based index of the correct option.
- The explanation must give the clinical rationale: why the correct option is right and why the distractors are wrong. Focus on clinical reasoning and patient safety.
- Each question in a set must cover a different aspect of the topic. Use the question position to vary the scenario.`

// buildUserMessage constructs the per-question user message.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "This is question %d of %d.\n", input.Index+1, input.Count)

	return b.String()
}
