package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// deadlineRecorder notes whether the request context carried a deadline.
type deadlineRecorder struct {
	hadDeadline bool
}

func (d *deadlineRecorder) Generate(ctx context.Context, _ Request) (*Response, error) {
	_, d.hadDeadline = ctx.Deadline()
	return &Response{Content: json.RawMessage(`{}`), Model: "stub"}, nil
}

func (d *deadlineRecorder) ModelID() string { return "stub" }

func TestWithTimeout_AppliesDeadline(t *testing.T) {
	rec := &deadlineRecorder{}
	p := withTimeout(rec, 30*time.Second)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !rec.hadDeadline {
		t.Error("configured timeout must set a request deadline")
	}
	if p.ModelID() != "stub" {
		t.Errorf("ModelID must pass through, got %q", p.ModelID())
	}
}

func TestWithTimeout_ZeroIsPassthrough(t *testing.T) {
	rec := &deadlineRecorder{}
	p := withTimeout(rec, 0)

	if p != Provider(rec) {
		t.Fatal("zero timeout must not wrap the provider")
	}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rec.hadDeadline {
		t.Error("no timeout configured, no deadline expected")
	}
}

func TestNewProvider_MockConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(cfg, nil, nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("expected *MockProvider, got %T", p)
	}
}

func TestNewDialer_UnknownProvider(t *testing.T) {
	if _, err := NewDialer(Config{Provider: "cohere"}, false); err == nil {
		t.Fatal("unknown provider must error")
	}
}
