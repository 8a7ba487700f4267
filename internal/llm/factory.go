package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
)

// NewDialer creates a Dialer for the configured provider and workload.
// The chat flag selects the conversational model where the provider
// distinguishes one (Gemini's pro model serves the tutor).
func NewDialer(cfg Config, chat bool) (Dialer, error) {
	switch cfg.Provider {
	case "gemini":
		model := cfg.Gemini.FlashModel
		if chat {
			model = cfg.Gemini.ProModel
		}
		return NewGeminiDialer(model), nil
	case "anthropic":
		return NewAnthropicDialer(cfg.Anthropic.Model), nil
	case "openai":
		return NewOpenAIDialer(cfg.OpenAI.Model, cfg.OpenAI.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// NewProvider assembles the provider stack for the generation workload:
// caller → key rotation → per-key provider, with every request recorded
// through the event log.
func NewProvider(cfg Config, pool *keypool.Pool, log RequestLog) (Provider, error) {
	return newProvider(cfg, pool, log, false)
}

// NewChatProvider is NewProvider for the tutor's conversational workload.
func NewChatProvider(cfg Config, pool *keypool.Pool, log RequestLog) (Provider, error) {
	return newProvider(cfg, pool, log, true)
}

func newProvider(cfg Config, pool *keypool.Pool, log RequestLog, chat bool) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	dial, err := NewDialer(cfg, chat)
	if err != nil {
		return nil, err
	}

	var p Provider = WithKeyRotation(pool, dial)
	p = withTimeout(p, cfg.Timeout)
	if log != nil {
		p = WithLogging(p, log)
	}
	return p, nil
}

// timeoutProvider bounds each request, including all rotation attempts,
// with the configured deadline.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func withTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
