package embedding

import (
	"context"
	"sync"
)

// Memo memoizes embeddings per text for the lifetime of a session. The
// matcher compares every JD skill against every resume skill, so without
// memoization each skill would be embedded once per pairing instead of once
// per batch. Safe for concurrent use.
type Memo struct {
	next Embedder

	mu    sync.RWMutex
	cache map[string][]float32
}

// NewMemo wraps an embedder with an in-memory cache.
func NewMemo(next Embedder) *Memo {
	return &Memo{
		next:  next,
		cache: make(map[string][]float32),
	}
}

// Embed returns the cached vector for text, delegating on first sight.
func (m *Memo) Embed(ctx context.Context, text string) ([]float32, error) {
	m.mu.RLock()
	vec, ok := m.cache[text]
	m.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := m.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[text] = vec
	m.mu.Unlock()
	return vec, nil
}
