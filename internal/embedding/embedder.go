// Package embedding defines the capability boundary for turning skill text
// into fixed-length dense vectors, plus adapters over the LLM client.
package embedding

import "context"

// Embedder turns a normalized skill or skill-set string into a fixed-length
// dense vector. Implementations must be safe for concurrent reads and
// deterministic for identical input within a session; determinism across
// model versions is a documented assumption, not a correctness requirement.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
