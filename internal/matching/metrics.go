package matching

import (
	"math"

	"github.com/jonathan/job-matcher/internal/types"
)

// Relevance measures how well resume skills cover the JD requirements:
// the sum of matched similarity scores over the JD skill count, expressed
// 0-100. Unmatched JD skills contribute 0, not a penalty beyond their
// absence.
func Relevance(matched []types.MatchedSkill, jdCount int) float64 {
	if jdCount == 0 {
		return 0
	}
	total := 0.0
	for _, m := range matched {
		total += m.Similarity
	}
	return round2(total / float64(jdCount) * 100)
}

// Completeness measures how much of the resume's claimed skill surface is
// substantiated: the fraction of resume skills that were a best match for at
// least one JD skill, expressed 0-100. Independent of relevance.
func Completeness(contributorCount, resumeCount int) float64 {
	if resumeCount == 0 {
		return 0
	}
	return round2(float64(contributorCount) / float64(resumeCount) * 100)
}

// OverallScore blends relevance and completeness using the configured
// weights, rounded to the nearest integer and clamped to [0, 100].
func OverallScore(relevance, completeness float64, cfg Config) int {
	score := int(math.Round(cfg.RelevanceWeight*relevance + cfg.CompletenessWeight*completeness))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RoleFit classifies the overall score against the configured boundaries.
// Boundaries are inclusive: a score equal to StrongFloor is Strong.
func RoleFit(score int, cfg Config) string {
	switch {
	case score >= cfg.StrongFloor:
		return types.FitStrong
	case score >= cfg.ModerateFloor:
		return types.FitModerate
	default:
		return types.FitWeak
	}
}

// BuildRecord assembles the metrics stage of a MatchRecord from a matcher
// outcome. Suggestions are filled in by the gap generator afterwards.
func BuildRecord(outcome *Outcome, resume, jd types.SkillSet, cfg Config) *types.MatchRecord {
	relevance := Relevance(outcome.Matched, jd.Len())
	completeness := Completeness(outcome.ContributorCount(), resume.Len())
	score := OverallScore(relevance, completeness, cfg)

	return &types.MatchRecord{
		MatchedSkills:     outcome.Matched,
		MissingSkills:     outcome.Missing,
		MatchScore:        score,
		RelevanceScore:    relevance,
		CompletenessScore: completeness,
		RoleFit:           RoleFit(score, cfg),
	}
}

// EmptyJDRecord is the defined fallback for an empty JD skill set: score 0
// with a Weak fit.
func EmptyJDRecord() *types.MatchRecord {
	return &types.MatchRecord{
		MatchedSkills:     []types.MatchedSkill{},
		MissingSkills:     []types.Skill{},
		MatchScore:        0,
		RelevanceScore:    0,
		CompletenessScore: 0,
		RoleFit:           types.FitWeak,
		Suggestions:       []string{},
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
