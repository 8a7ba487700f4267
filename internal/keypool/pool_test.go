package keypool

import (
	"errors"
	"testing"
)

func TestCurrent_Empty(t *testing.T) {
	p := New(nil)
	_, _, err := p.Current()
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

func TestAdvance_WrapsAround(t *testing.T) {
	p := New([]string{"a", "b", "c"})

	key, idx, err := p.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "a" || idx != 0 {
		t.Fatalf("expected a/0, got %s/%d", key, idx)
	}

	p.Advance()
	p.Advance()
	p.Advance()

	key, idx, _ = p.Current()
	if key != "a" || idx != 0 {
		t.Fatalf("expected wrap to a/0, got %s/%d", key, idx)
	}
}

func TestAdvance_EmptyPoolIsNoop(t *testing.T) {
	p := New(nil)
	p.Advance() // must not panic
	if p.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", p.Cursor())
	}
}

func TestReplace_ResetsOutOfRangeCursor(t *testing.T) {
	p := New([]string{"a", "b", "c"})
	p.Advance()
	p.Advance()

	p.Replace([]string{"x"})
	key, idx, err := p.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "x" || idx != 0 {
		t.Fatalf("expected x/0 after replace, got %s/%d", key, idx)
	}
}

func TestReplace_KeepsCursorInRange(t *testing.T) {
	p := New([]string{"a", "b", "c"})
	p.Advance()

	p.Replace([]string{"x", "y", "z"})
	key, _, _ := p.Current()
	if key != "y" {
		t.Fatalf("expected cursor to stay at 1, got key %s", key)
	}
}
