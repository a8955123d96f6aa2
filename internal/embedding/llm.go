package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/job-matcher/internal/llm"
)

// LLMEmbedder adapts an llm.Client to the Embedder contract. Collaborator
// deadline failures surface as *RetrievalTimeoutError with the offending text
// identified; other failures are wrapped and propagated.
type LLMEmbedder struct {
	client llm.Client
}

// NewLLMEmbedder wraps the given LLM client.
func NewLLMEmbedder(client llm.Client) *LLMEmbedder {
	return &LLMEmbedder{client: client}
}

// Embed returns the dense vector for the given text.
func (e *LLMEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.client.EmbedText(ctx, text)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &RetrievalTimeoutError{Text: text, Cause: err}
		}
		return nil, fmt.Errorf("failed to embed %q: %w", text, err)
	}
	return vec, nil
}
