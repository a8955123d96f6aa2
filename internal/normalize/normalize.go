// Package normalize maps free-form extracted skill strings to a canonical vocabulary.
package normalize

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Clean lowercases a raw skill string, trims it and collapses internal
// whitespace. Returns "" for entries that are empty after cleaning.
func Clean(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Normalize resolves raw skill strings against a canonical map (synonym ->
// canonical name) and deduplicates by canonical name, preserving first-seen
// order. Unresolved entries are retained under their cleaned form and tagged
// as non-canonical; they are still usable for embedding but excluded from
// exact-match fast paths.
//
// Individual entries that clean to "" are skipped. An empty input slice
// yields an empty SkillSet; a non-empty input where every entry cleans to ""
// fails with *InvalidInputError.
func Normalize(raw []string, canonical map[string]string) (types.SkillSet, error) {
	// Canonical targets of the map count as canonical themselves, so that
	// "python" is canonical whenever "py" -> "python" is.
	targets := make(map[string]bool, len(canonical))
	for _, v := range canonical {
		targets[Clean(v)] = true
	}

	set := types.SkillSet{Skills: make([]types.Skill, 0, len(raw))}
	seen := make(map[string]bool, len(raw))
	for _, entry := range raw {
		name := Clean(entry)
		if name == "" {
			continue
		}

		isCanonical := false
		if resolved, ok := canonical[name]; ok {
			name = Clean(resolved)
			isCanonical = true
		} else if targets[name] {
			isCanonical = true
		}

		if seen[name] {
			continue
		}
		seen[name] = true
		set.Skills = append(set.Skills, types.Skill{Name: name, Canonical: isCanonical})
	}

	if len(raw) > 0 && len(set.Skills) == 0 {
		return types.SkillSet{}, &InvalidInputError{Message: "every entry is empty after cleaning"}
	}

	return set, nil
}
