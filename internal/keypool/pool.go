package keypool

import (
	"errors"
	"sync"
)

// ErrNoCredentials indicates that no active provider credentials are
// configured. This is a configuration problem, not a transient failure:
// callers should surface it to the operator rather than retry.
var ErrNoCredentials = errors.New("no provider API keys configured: add keys in the admin panel")

// Pool holds an ordered set of provider API keys with a rotating cursor.
// The cursor is shared by every call made through the same Pool, so a key
// that just hit its quota stays skipped for subsequent calls too.
type Pool struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// New creates a Pool over the given secrets in store order.
// Empty or duplicate-free filtering is the caller's concern; the pool
// preserves the order it is given.
func New(keys []string) *Pool {
	return &Pool{keys: keys}
}

// Len returns the number of keys in the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}

// Current returns the key at the cursor and its position.
// Returns ErrNoCredentials when the pool is empty.
func (p *Pool) Current() (string, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return "", 0, ErrNoCredentials
	}
	return p.keys[p.cursor], p.cursor, nil
}

// Advance moves the cursor to the next key, wrapping around at the end.
// Called after a quota-exhaustion signal on the current key.
func (p *Pool) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.keys)
}

// Cursor returns the current cursor position.
func (p *Pool) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Replace swaps the key set while keeping the pool identity, resetting the
// cursor when it would fall outside the new set. Used when the operator
// activates or deactivates keys without restarting the process.
func (p *Pool) Replace(keys []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = keys
	if p.cursor >= len(keys) {
		p.cursor = 0
	}
}
