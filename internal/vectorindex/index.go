// Package vectorindex stores skill embeddings and answers nearest-neighbor
// similarity queries. Implementations must support concurrent reads; writes
// are serialized upstream of the matcher.
package vectorindex

import "context"

// Entry is one stored embedding, keyed by document ID.
type Entry struct {
	DocID    string
	Text     string
	Vector   []float32
	Metadata map[string]string
}

// Result is one nearest-neighbor hit, most similar first.
type Result struct {
	DocID      string
	Similarity float64 // cosine similarity, higher is closer
	Metadata   map[string]string
}

// Index is the narrow contract the engine depends on: upsert embeddings and
// query by vector.
type Index interface {
	Upsert(ctx context.Context, entries []Entry) error
	Query(ctx context.Context, vector []float32, k int) ([]Result, error)
}
