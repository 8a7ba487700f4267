package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error taxonomy for provider calls. The rotation wrapper keys off
// ErrRateLimit to advance to the next credential; everything else
// propagates unchanged, so the generation pipeline can skip a bad item
// without burning the rest of the key pool.

// ErrRateLimit reports a 429-class quota error from the provider.
// RetryAfter is zero when the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports content that failed to parse or did not
// conform to the requested schema. Content carries the raw model output
// so the event log shows what actually came back.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports a provider that is down, unreachable,
// or rejecting the request for a non-quota reason.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the MaxTokens limit.
// Raised only for schema-constrained requests, where a truncated document
// cannot be valid JSON; free-form tutor replies are returned as-is.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// truncationError converts a max_tokens stop into an error when the
// request demanded structured output. Providers call this with their
// normalized stop reason before schema validation.
func truncationError(stopReason string, schema *Schema, content json.RawMessage) error {
	if schema != nil && stopReason == "max_tokens" {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return nil
}
