package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTruncationError_SchemaRequests(t *testing.T) {
	content := json.RawMessage(`{"question":"A client with`)
	schema := &Schema{Name: "question", Definition: map[string]any{"type": "object"}}

	err := truncationError("max_tokens", schema, content)
	if err == nil {
		t.Fatal("truncated structured output must error")
	}
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected *ErrMaxTokensExceeded, got %T", err)
	}
	if string(truncated.Content) != string(content) {
		t.Errorf("truncated content not preserved: %s", truncated.Content)
	}
}

func TestTruncationError_FreeFormPasses(t *testing.T) {
	// A cut-off tutor reply is still usable text.
	if err := truncationError("max_tokens", nil, json.RawMessage("partial reply")); err != nil {
		t.Errorf("free-form truncation must not error, got %v", err)
	}
	if err := truncationError("end", &Schema{Name: "q"}, json.RawMessage(`{}`)); err != nil {
		t.Errorf("clean stop must not error, got %v", err)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")

	tests := []struct {
		name string
		err  error
	}{
		{"rate limit", &ErrRateLimit{Err: inner}},
		{"invalid response", &ErrInvalidResponse{Err: inner}},
		{"provider unavailable", &ErrProviderUnavailable{Err: inner}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, inner) {
				t.Errorf("%v must unwrap to the inner error", tt.err)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
