// Package llm provides centralized LLM configuration and client abstractions
// for skill extraction and text embedding.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default model names, matching the models the matcher was tuned on.
const (
	DefaultExtractionModel = "gemini-2.5-pro"
	DefaultEmbeddingModel  = "embedding-001"
)

// Config holds provider and model selection for the LLM client
type Config struct {
	Provider        Provider `json:"provider"`
	ExtractionModel string   `json:"extraction_model"`
	EmbeddingModel  string   `json:"embedding_model"`
}

// DefaultConfig returns the default LLM configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		ExtractionModel: DefaultExtractionModel,
		EmbeddingModel:  DefaultEmbeddingModel,
	}
}
