package tutor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

func TestChat(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Check the apical pulse for a full minute before giving digoxin."),
	})
	svc := New(mock)

	history := []Message{
		{Role: "user", Text: "What should I check before giving digoxin?"},
		{Role: "model", Text: "Which part are you unsure about?"},
	}
	reply, err := svc.Chat(context.Background(), "The pre-administration assessment.", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Text == "" {
		t.Fatal("expected a non-empty reply")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !req.WebSearch {
		t.Error("chat requests must ask for web grounding")
	}
	if req.Schema != nil {
		t.Error("chat requests must not carry a schema")
	}
	if req.System == "" {
		t.Error("chat requests must carry the tutor system prompt")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("expected history + current message, got %d messages", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("model turns map to the assistant role, got %q", req.Messages[1].Role)
	}
	if req.Messages[2].Role != llm.RoleUser || req.Messages[2].Content != "The pre-administration assessment." {
		t.Errorf("current message must come last: %+v", req.Messages[2])
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	svc := New(llm.NewMockProvider())
	if _, err := svc.Chat(context.Background(), "   ", nil); err == nil {
		t.Fatal("expected error for blank message")
	}
}

func TestChat_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	svc := New(mock)
	if _, err := svc.Chat(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
