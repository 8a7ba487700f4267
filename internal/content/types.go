package content

import (
	"time"

	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

// PracticeTest is a named, ordered bank of questions. The store reads and
// rewrites whole test documents; there is no partial-field update.
type PracticeTest struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Duration   string              `json:"duration"`
	Difficulty quizgen.Difficulty  `json:"difficulty,omitempty"`
	Questions  []quizgen.Question  `json:"questions"`
}

// APIKey is one provider credential as stored in the admin panel.
// The generation pool uses only the secrets of active keys, in store order.
type APIKey struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Secret   string `json:"key_value"`
	IsActive bool   `json:"is_active"`
}

// LLMRequestEvent is a persisted provider-call record.
type LLMRequestEvent struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CreatedAt    time.Time
}
