package llm

import (
	"context"
	"errors"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
)

// RotatingProvider is a decorator that executes each request with the API
// key at the pool cursor, advancing to the next key whenever the provider
// signals quota exhaustion. The retry budget is the pool size: every key is
// tried at most once per call. Non-quota errors propagate immediately.
type RotatingProvider struct {
	pool *keypool.Pool
	dial Dialer
}

// WithKeyRotation wraps a Dialer with quota-driven key rotation over pool.
func WithKeyRotation(pool *keypool.Pool, dial Dialer) *RotatingProvider {
	return &RotatingProvider{pool: pool, dial: dial}
}

func (r *RotatingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.pool.Len()
	if attempts == 0 {
		return nil, keypool.ErrNoCredentials
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		key, _, err := r.pool.Current()
		if err != nil {
			return nil, err
		}

		p, err := r.dial.Dial(ctx, key)
		if err != nil {
			return nil, err
		}

		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// Only quota exhaustion rotates; everything else is the caller's
		// problem and retrying with another key would not help.
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			return nil, err
		}
		r.pool.Advance()
	}

	return nil, lastErr
}

func (r *RotatingProvider) ModelID() string {
	return r.dial.ModelID()
}
