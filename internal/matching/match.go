// Package matching computes matched skills, missing skills and match scores
// between a resume skill set and a job description skill set, using semantic
// similarity rather than exact string equality.
package matching

import (
	"context"
	"fmt"

	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorindex"
)

// Outcome holds the matcher's verdict for one (resume, JD) pair before
// metrics and suggestions are layered on.
type Outcome struct {
	Matched []types.MatchedSkill
	Missing []types.Skill

	// contributors are the resume skills that were the best match for at
	// least one matched JD skill.
	contributors map[string]bool
}

// ContributorCount returns how many distinct resume skills substantiated at
// least one JD skill.
func (o *Outcome) ContributorCount() int {
	return len(o.contributors)
}

// Match compares each JD skill against every resume skill and selects the
// best match per JD skill. A resume skill may satisfy multiple JD skills;
// this reflects real-world skill overlap, e.g. "python" covering both
// "scripting" and "backend development" entries.
//
// Canonical-name equality short-circuits to similarity 1.0 and skips the
// embedding lookup, so identical skills are never missed due to embedding
// noise. Ties on similarity prefer the lexicographically smaller resume
// skill name for determinism.
//
// An empty JD set fails with *EmptyInputError; an empty resume set marks
// every JD skill missing.
func Match(ctx context.Context, resume, jd types.SkillSet, threshold float64, embedder embedding.Embedder) (*Outcome, error) {
	if jd.Len() == 0 {
		return nil, &EmptyInputError{Message: "job description has no skills"}
	}

	outcome := &Outcome{
		Matched:      make([]types.MatchedSkill, 0, jd.Len()),
		Missing:      make([]types.Skill, 0),
		contributors: make(map[string]bool),
	}

	for _, jdSkill := range jd.Skills {
		best, sim, err := bestResumeMatch(ctx, resume, jdSkill, embedder)
		if err != nil {
			return nil, err
		}

		if best != "" && sim >= threshold {
			outcome.Matched = append(outcome.Matched, types.MatchedSkill{
				JDSkill:     jdSkill.Name,
				ResumeSkill: best,
				Similarity:  sim,
			})
			outcome.contributors[best] = true
		} else {
			outcome.Missing = append(outcome.Missing, jdSkill)
		}
	}

	return outcome, nil
}

// bestResumeMatch finds the resume skill with maximum similarity to the JD
// skill. Returns ("", 0, nil) when the resume set is empty.
func bestResumeMatch(ctx context.Context, resume types.SkillSet, jdSkill types.Skill, embedder embedding.Embedder) (string, float64, error) {
	// Exact canonical-name equality never touches the embedder.
	if resume.Contains(jdSkill.Name) {
		return jdSkill.Name, 1.0, nil
	}

	if resume.Len() == 0 {
		return "", 0, nil
	}

	jdVec, err := embedder.Embed(ctx, jdSkill.Name)
	if err != nil {
		return "", 0, fmt.Errorf("embedding jd skill %q: %w", jdSkill.Name, err)
	}

	bestName := ""
	bestSim := -1.0
	for _, resumeSkill := range resume.Skills {
		resumeVec, err := embedder.Embed(ctx, resumeSkill.Name)
		if err != nil {
			return "", 0, fmt.Errorf("embedding resume skill %q: %w", resumeSkill.Name, err)
		}

		sim, err := vectorindex.Cosine(jdVec, resumeVec)
		if err != nil {
			return "", 0, fmt.Errorf("comparing %q against %q: %w", jdSkill.Name, resumeSkill.Name, err)
		}

		if sim > bestSim || (sim == bestSim && resumeSkill.Name < bestName) {
			bestSim = sim
			bestName = resumeSkill.Name
		}
	}

	return bestName, bestSim, nil
}
