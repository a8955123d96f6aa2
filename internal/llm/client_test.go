package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `[{"name": "go"}]`, CleanJSONBlock("```json\n[{\"name\": \"go\"}]\n```"))
	assert.Equal(t, `[{"name": "go"}]`, CleanJSONBlock("```\n[{\"name\": \"go\"}]\n```"))
	assert.Equal(t, `[{"name": "go"}]`, CleanJSONBlock(`  [{"name": "go"}]  `))
	assert.Equal(t, "", CleanJSONBlock("```json\n```"))
	assert.Equal(t, "", CleanJSONBlock(""))
}

func TestExtractTextFromResponse_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("[{"), genai.Text("}]")},
			},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "[{}]", text)
}

func TestExtractTextFromResponse_NoCandidates(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestExtractTextFromResponse_NoContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}

	_, err := extractTextFromResponse(resp)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultExtractionModel, cfg.ExtractionModel)
	assert.Equal(t, DefaultEmbeddingModel, cfg.EmbeddingModel)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
