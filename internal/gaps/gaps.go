// Package gaps turns unmatched and low-similarity JD skills into a ranked
// skill-gap report with textual improvement suggestions.
package gaps

import (
	"fmt"
	"sort"

	"github.com/jonathan/job-matcher/internal/types"
)

// Default generation parameters.
const (
	defaultWeakMatchThreshold = 0.85
	defaultSuggestionCap      = 10

	// neutralWeight is used for skills absent from the importance weighting.
	neutralWeight = 0.5
)

// Config carries the gap generation parameters.
type Config struct {
	// Weights ranks gap importance per canonical skill name. Skills absent
	// from the map default to the neutral weight.
	Weights map[string]float64 `json:"weights"`

	// WeakMatchThreshold flags matched pairs whose similarity sits below it
	// for evidence-strengthening tweaks. Always at least the matching
	// threshold, so a pair can be matched yet still weak.
	WeakMatchThreshold float64 `json:"weak_match_threshold" validate:"gte=0,lte=1"`

	// SuggestionCap bounds the suggestion list; truncation keeps the
	// highest-priority items.
	SuggestionCap int `json:"suggestion_cap" validate:"gte=0"`
}

// DefaultConfig returns the default gap generation parameters.
func DefaultConfig() Config {
	return Config{
		WeakMatchThreshold: defaultWeakMatchThreshold,
		SuggestionCap:      defaultSuggestionCap,
	}
}

// Gap is one missing JD skill with its importance weight.
type Gap struct {
	Skill  types.Skill `json:"skill"`
	Weight float64     `json:"weight"`
}

// Analysis is the gap generator's output: ranked gaps plus bounded
// suggestions.
type Analysis struct {
	Gaps        []Gap    `json:"gaps"`
	Suggestions []string `json:"suggestions"`
}

// Generate ranks the missing skills by importance (highest first, ties by
// canonical name) and produces one "develop" suggestion per gap, followed by
// an evidence tweak for each matched pair below the weak-match threshold.
func Generate(missing []types.Skill, matched []types.MatchedSkill, cfg Config) Analysis {
	ranked := make([]Gap, 0, len(missing))
	for _, skill := range missing {
		weight, ok := cfg.Weights[skill.Name]
		if !ok {
			weight = neutralWeight
		}
		ranked = append(ranked, Gap{Skill: skill, Weight: weight})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Skill.Name < ranked[j].Skill.Name
	})

	suggestions := make([]string, 0, len(ranked))
	for _, gap := range ranked {
		suggestions = append(suggestions, fmt.Sprintf("develop %s", gap.Skill.Name))
	}

	// Weak matches rank below gaps: weakest evidence first, ties by JD skill.
	weak := make([]types.MatchedSkill, 0, len(matched))
	for _, m := range matched {
		if m.Similarity < cfg.WeakMatchThreshold {
			weak = append(weak, m)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Similarity != weak[j].Similarity {
			return weak[i].Similarity < weak[j].Similarity
		}
		return weak[i].JDSkill < weak[j].JDSkill
	})
	for _, m := range weak {
		suggestions = append(suggestions, fmt.Sprintf("strengthen evidence for %s in resume", m.JDSkill))
	}

	if cfg.SuggestionCap > 0 && len(suggestions) > cfg.SuggestionCap {
		suggestions = suggestions[:cfg.SuggestionCap]
	}

	return Analysis{Gaps: ranked, Suggestions: suggestions}
}
