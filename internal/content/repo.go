package content

import (
	"context"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
)

// TestRepo manages practice test documents.
type TestRepo interface {
	// Put creates or fully replaces a test document.
	Put(ctx context.Context, test *PracticeTest) error

	// Get returns the test with the given ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*PracticeTest, error)

	// List returns all tests ordered by creation time, oldest first.
	List(ctx context.Context) ([]*PracticeTest, error)

	// Delete removes a test. Deleting a missing test is not an error.
	Delete(ctx context.Context, id string) error
}

// KeyRepo manages provider API keys.
type KeyRepo interface {
	// Add stores a new active key and returns it with its assigned ID.
	Add(ctx context.Context, label, secret string) (*APIKey, error)

	// List returns all keys ordered by creation time, oldest first.
	List(ctx context.Context) ([]APIKey, error)

	// ActiveSecrets returns the secrets of active keys in creation order.
	// This is the rotation pool's view of the key table.
	ActiveSecrets(ctx context.Context) ([]string, error)

	// SetActive activates or deactivates a key.
	SetActive(ctx context.Context, id string, active bool) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, id string) error
}

// EventRepo provides append and query access to provider call records.
// It satisfies llm.RequestLog.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, e llm.RequestEvent) error

	// Recent returns the most recent events, newest first.
	Recent(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}
