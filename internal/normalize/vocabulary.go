package normalize

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/types"
)

// Vocabulary is the canonical skill configuration: the known skill names per
// category plus a synonym map. It is loaded once and treated as immutable for
// the duration of a batch.
type Vocabulary struct {
	Technical []string          `json:"technical"`
	Soft      []string          `json:"soft"`
	Synonyms  map[string]string `json:"synonyms"`
}

// LoadVocabulary reads a skills configuration JSON file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills config %s: %w", path, err)
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse skills config JSON: %w", err)
	}

	return &vocab, nil
}

// CanonicalMap builds the synonym -> canonical name mapping used by Normalize.
// Every known vocabulary name maps to itself so that exact entries resolve as
// canonical.
func (v *Vocabulary) CanonicalMap() map[string]string {
	m := make(map[string]string, len(v.Technical)+len(v.Soft)+len(v.Synonyms))
	for _, name := range v.Technical {
		m[Clean(name)] = Clean(name)
	}
	for _, name := range v.Soft {
		m[Clean(name)] = Clean(name)
	}
	for syn, canonical := range v.Synonyms {
		m[Clean(syn)] = Clean(canonical)
	}
	return m
}

// Categorize returns a copy of the set with categories filled in from the
// vocabulary. Skills outside the vocabulary keep their existing category.
func (v *Vocabulary) Categorize(set types.SkillSet) types.SkillSet {
	technical := make(map[string]bool, len(v.Technical))
	for _, name := range v.Technical {
		technical[Clean(name)] = true
	}
	soft := make(map[string]bool, len(v.Soft))
	for _, name := range v.Soft {
		soft[Clean(name)] = true
	}

	out := types.SkillSet{Skills: make([]types.Skill, len(set.Skills))}
	copy(out.Skills, set.Skills)
	for i := range out.Skills {
		switch {
		case technical[out.Skills[i].Name]:
			out.Skills[i].Category = types.CategoryTechnical
		case soft[out.Skills[i].Name]:
			out.Skills[i].Category = types.CategorySoft
		}
	}
	return out
}

// Contains reports whether the cleaned name is part of the vocabulary,
// either directly or as a synonym.
func (v *Vocabulary) Contains(name string) bool {
	_, ok := v.CanonicalMap()[Clean(name)]
	return ok
}
