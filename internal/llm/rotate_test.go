package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
)

// mockDialer returns a per-key mock provider so tests can control which
// key succeeds.
type mockDialer struct {
	providers map[string]*MockProvider
	dialed    []string
}

func (d *mockDialer) Dial(_ context.Context, apiKey string) (Provider, error) {
	d.dialed = append(d.dialed, apiKey)
	p, ok := d.providers[apiKey]
	if !ok {
		return nil, errors.New("unknown key")
	}
	return p, nil
}

func (d *mockDialer) ModelID() string { return "mock" }

func quotaErr() *ErrRateLimit {
	return &ErrRateLimit{Err: errors.New("429 quota exceeded")}
}

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRotation_EmptyPool(t *testing.T) {
	p := WithKeyRotation(keypool.New(nil), &mockDialer{})
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, keypool.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestRotation_FirstKeyExhausted(t *testing.T) {
	pool := keypool.New([]string{"k1", "k2"})
	d := &mockDialer{providers: map[string]*MockProvider{
		"k1": NewMockProvider(MockResponse{Err: quotaErr()}),
		"k2": NewMockProvider(okResponse()),
	}}
	p := WithKeyRotation(pool, d)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if pool.Cursor() != 1 {
		t.Fatalf("expected cursor at 1 after rotation, got %d", pool.Cursor())
	}
}

// A key that keeps reporting quota exhaustion stays skipped: the shared
// cursor means follow-up calls go straight to the working key.
func TestRotation_CursorPersistsAcrossCalls(t *testing.T) {
	pool := keypool.New([]string{"k1", "k2"})
	k1 := NewMockProvider(
		MockResponse{Err: quotaErr()},
		MockResponse{Err: quotaErr()},
	)
	k2 := NewMockProvider(okResponse(), okResponse(), okResponse())
	d := &mockDialer{providers: map[string]*MockProvider{"k1": k1, "k2": k2}}
	p := WithKeyRotation(pool, d)

	for i := 0; i < 3; i++ {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if got := k1.CallCount(); got != 1 {
		t.Fatalf("expected exhausted key to be tried once, got %d", got)
	}
	if got := k2.CallCount(); got != 3 {
		t.Fatalf("expected working key to serve 3 calls, got %d", got)
	}
	if pool.Cursor() != 1 {
		t.Fatalf("expected cursor parked at 1, got %d", pool.Cursor())
	}
}

func TestRotation_AllKeysExhausted(t *testing.T) {
	pool := keypool.New([]string{"k1", "k2"})
	d := &mockDialer{providers: map[string]*MockProvider{
		"k1": NewMockProvider(MockResponse{Err: quotaErr()}),
		"k2": NewMockProvider(MockResponse{Err: quotaErr()}),
	}}
	p := WithKeyRotation(pool, d)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected rate limit error after exhausting pool, got %v", err)
	}
	// One full lap: cursor wraps back to the start.
	if pool.Cursor() != 0 {
		t.Fatalf("expected cursor back at 0, got %d", pool.Cursor())
	}
}

func TestRotation_NonQuotaErrorDoesNotRotate(t *testing.T) {
	pool := keypool.New([]string{"k1", "k2"})
	d := &mockDialer{providers: map[string]*MockProvider{
		"k1": NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}}),
		"k2": NewMockProvider(okResponse()),
	}}
	p := WithKeyRotation(pool, d)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	if pool.Cursor() != 0 {
		t.Fatalf("cursor must not move on non-quota errors, got %d", pool.Cursor())
	}
	if len(d.dialed) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(d.dialed))
	}
}
