// Package extraction pulls technical and soft skills out of document text
// using the LLM, constrained to the canonical skill vocabulary.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/normalize"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// maxPromptTextRunes bounds how much document text goes into the prompt.
const maxPromptTextRunes = 2000

const extractionPromptTemplate = `Extract all technical and soft skills from the provided text, mapping synonyms to canonical names in the following skills list:
%s
Output *only* a valid JSON array of objects with 'name' and 'category' keys.
Example: [
    {"name": "python", "category": "technical"},
    {"name": "critical thinking", "category": "soft"}
]
Use canonical names for synonyms (e.g., 'Python3' or 'Py' -> 'python').
If no skills are found, return an empty array [].
Do not include any text outside the JSON array.
Text: %s`

// fallbackPairPattern salvages name/category pairs from a malformed response.
var fallbackPairPattern = regexp.MustCompile(`"name":\s*"([^"]+)",\s*"category":\s*"([^"]+)"`)

// rawSkill is the wire shape the LLM returns.
type rawSkill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Extractor extracts skills from document text via the LLM.
type Extractor struct {
	client llm.Client
	vocab  *normalize.Vocabulary
}

// New creates an Extractor bound to a client and a canonical vocabulary.
func New(client llm.Client, vocab *normalize.Vocabulary) *Extractor {
	return &Extractor{client: client, vocab: vocab}
}

// Extract returns the normalized skill set found in the text. Skills outside
// the vocabulary are dropped; a malformed response falls back to regex
// salvage before failing.
func (e *Extractor) Extract(ctx context.Context, text string) (types.SkillSet, error) {
	vocabJSON, err := json.Marshal(e.vocab)
	if err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to marshal vocabulary: %w", err)
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, vocabJSON, truncateRunes(text, maxPromptTextRunes))

	response, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return types.SkillSet{}, &APICallError{Message: "skill extraction", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(response)
	if cleaned == "" {
		return types.SkillSet{Skills: []types.Skill{}}, nil
	}

	raw, err := e.parseResponse(cleaned)
	if err != nil {
		return types.SkillSet{}, err
	}

	return e.toSkillSet(raw)
}

// parseResponse decodes the response, validating against the extracted-skills
// schema when it is resolvable. On decode failure it salvages name/category
// pairs with a regex, mirroring how malformed model output is recovered in
// practice.
func (e *Extractor) parseResponse(cleaned string) ([]rawSkill, error) {
	var raw []rawSkill
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		salvaged := fallbackPairPattern.FindAllStringSubmatch(cleaned, -1)
		if len(salvaged) == 0 {
			return nil, &ParseError{Message: "response is not a skill array", Cause: err}
		}
		raw = make([]rawSkill, 0, len(salvaged))
		for _, pair := range salvaged {
			raw = append(raw, rawSkill{Name: pair[1], Category: pair[2]})
		}
		return raw, nil
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/extracted_skills.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, []byte(cleaned)); err != nil {
			return nil, &ParseError{Message: "response failed schema validation", Cause: err}
		}
	}

	return raw, nil
}

// toSkillSet filters to vocabulary members, normalizes and categorizes.
func (e *Extractor) toSkillSet(raw []rawSkill) (types.SkillSet, error) {
	canonicalMap := e.vocab.CanonicalMap()

	names := make([]string, 0, len(raw))
	for _, skill := range raw {
		if _, ok := canonicalMap[normalize.Clean(skill.Name)]; !ok {
			continue // outside the vocabulary
		}
		names = append(names, skill.Name)
	}
	if len(names) == 0 {
		return types.SkillSet{Skills: []types.Skill{}}, nil
	}

	set, err := normalize.Normalize(names, canonicalMap)
	if err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to normalize extracted skills: %w", err)
	}

	return e.vocab.Categorize(set), nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
