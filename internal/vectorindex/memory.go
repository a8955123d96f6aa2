package vectorindex

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Index for single-shot CLI runs and tests.
// Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Upsert stores the entries, replacing any existing entry with the same DocID.
func (m *Memory) Upsert(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range entries {
		if entry.DocID == "" {
			return fmt.Errorf("entry has empty doc_id")
		}
		m.entries[entry.DocID] = entry
	}
	return nil
}

// Query returns up to k entries ranked by cosine similarity to the vector,
// most similar first. Ties break on DocID for determinism.
func (m *Memory) Query(_ context.Context, vector []float32, k int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Result, 0, len(m.entries))
	for _, entry := range m.entries {
		sim, err := Cosine(vector, entry.Vector)
		if err != nil {
			return nil, fmt.Errorf("comparing against doc %s: %w", entry.DocID, err)
		}
		results = append(results, Result{
			DocID:      entry.DocID,
			Similarity: sim,
			Metadata:   entry.Metadata,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].DocID < results[j].DocID
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
