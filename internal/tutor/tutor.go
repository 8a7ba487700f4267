// Package tutor implements the conversational clinical tutor. Replies are
// grounded with web search where the provider supports it, so answers about
// current clinical guidelines carry source citations.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

const systemPrompt = `You are an expert clinical nursing tutor for Graceful Path Global Health.
Your goal is to help nursing students and professionals excel in their exams and global career transitions.
Brand voice: Supportive, professional, clear, and simplified.
Focus on clinical reasoning and safety. Use web search to find latest clinical guidelines if asked about current standards.`

// Message is one turn of an ongoing tutoring conversation.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Reply is the tutor's answer plus any grounding sources.
type Reply struct {
	Text      string         `json:"text"`
	Citations []llm.Citation `json:"citations,omitempty"`
}

// Service answers clinical questions over a chat-tuned provider.
type Service struct {
	provider llm.Provider
}

// New creates a tutor backed by the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Chat sends a message with its preceding conversation and returns the
// tutor's reply. History is ordered oldest first; the current message is
// not part of it.
func (s *Service) Chat(ctx context.Context, message string, history []Message) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("chat: empty message")
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, h := range history {
		role := llm.RoleUser
		if h.Role == "model" || h.Role == "assistant" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: h.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	ctx = llm.WithPurpose(ctx, "tutor-chat")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  msgs,
		WebSearch: true,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("tutor chat: %w", err)
	}

	return &Reply{
		Text:      string(resp.Content),
		Citations: resp.Citations,
	}, nil
}
