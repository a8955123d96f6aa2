package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/embedding"
	"github.com/jonathan/job-matcher/internal/types"
)

// fakeEmbedder serves fixed vectors per skill name and counts lookups.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func skillSet(names ...string) types.SkillSet {
	set := types.SkillSet{Skills: make([]types.Skill, 0, len(names))}
	for _, name := range names {
		set.Skills = append(set.Skills, types.Skill{Name: name, Canonical: true})
	}
	return set
}

func TestMatch_IdenticalSetsFullyMatched(t *testing.T) {
	set := skillSet("go", "python", "sql")
	embedder := &fakeEmbedder{}

	for _, threshold := range []float64{0.0, 0.5, 1.0} {
		outcome, err := Match(context.Background(), set, set, threshold, embedder)
		require.NoError(t, err)

		assert.Len(t, outcome.Matched, 3)
		assert.Empty(t, outcome.Missing)
		for _, m := range outcome.Matched {
			assert.Equal(t, 1.0, m.Similarity)
		}
		assert.Equal(t, 100.0, Relevance(outcome.Matched, 3))
	}

	// Canonical equality never touches the embedder.
	assert.Equal(t, 0, embedder.calls)
}

func TestMatch_EmptyJDFails(t *testing.T) {
	_, err := Match(context.Background(), skillSet("go"), types.SkillSet{}, 0.75, &fakeEmbedder{})

	require.Error(t, err)
	var emptyErr *EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestMatch_EmptyResumeMarksEveryJDSkillMissing(t *testing.T) {
	jd := skillSet("go", "sql")

	outcome, err := Match(context.Background(), types.SkillSet{}, jd, 0.75, &fakeEmbedder{})
	require.NoError(t, err)

	assert.Empty(t, outcome.Matched)
	assert.Equal(t, jd.Skills, outcome.Missing)
	assert.Equal(t, 0, outcome.ContributorCount())
}

func TestMatch_ThresholdBoundaryIsInclusive(t *testing.T) {
	// cos([1,0],[3,4]) is exactly 3/5 = 0.6.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"scripting": {1, 0},
		"python":    {3, 4},
	}}

	outcome, err := Match(context.Background(), skillSet("python"), skillSet("scripting"), 0.6, embedder)
	require.NoError(t, err)

	require.Len(t, outcome.Matched, 1)
	assert.Equal(t, "scripting", outcome.Matched[0].JDSkill)
	assert.Equal(t, "python", outcome.Matched[0].ResumeSkill)
	assert.Equal(t, 0.6, outcome.Matched[0].Similarity)
}

func TestMatch_BelowThresholdIsMissing(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"scripting": {1, 0},
		"python":    {3, 4},
	}}

	outcome, err := Match(context.Background(), skillSet("python"), skillSet("scripting"), 0.61, embedder)
	require.NoError(t, err)

	assert.Empty(t, outcome.Matched)
	require.Len(t, outcome.Missing, 1)
	assert.Equal(t, "scripting", outcome.Missing[0].Name)
}

func TestMatch_OneResumeSkillMaySatisfyMultipleJDSkills(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"scripting":           {1, 0},
		"backend development": {0.9, 0.1},
		"python":              {1, 0},
		"cooking":             {0, 1},
	}}

	outcome, err := Match(context.Background(),
		skillSet("python", "cooking"),
		skillSet("scripting", "backend development"),
		0.8, embedder)
	require.NoError(t, err)

	require.Len(t, outcome.Matched, 2)
	assert.Equal(t, "python", outcome.Matched[0].ResumeSkill)
	assert.Equal(t, "python", outcome.Matched[1].ResumeSkill)
	assert.Equal(t, 1, outcome.ContributorCount())
}

func TestMatch_TieBreaksOnLexicographicallySmallerName(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"orchestration": {1, 0},
		"nomad":         {1, 0},
		"kubernetes":    {1, 0},
	}}

	outcome, err := Match(context.Background(),
		skillSet("nomad", "kubernetes"),
		skillSet("orchestration"),
		0.75, embedder)
	require.NoError(t, err)

	require.Len(t, outcome.Matched, 1)
	assert.Equal(t, "kubernetes", outcome.Matched[0].ResumeSkill)
}

func TestMatch_MissingGrowsMonotonicallyWithThreshold(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"terraform":    {1, 0},
		"ansible":      {4, 3}, // cos 0.8 against terraform
		"spreadsheets": {0, 1},
	}}
	resume := skillSet("ansible", "spreadsheets")
	jd := skillSet("terraform")

	missingByThreshold := make(map[float64]int)
	for _, threshold := range []float64{0.1, 0.5, 0.8, 0.9, 1.0} {
		outcome, err := Match(context.Background(), resume, jd, threshold, embedder)
		require.NoError(t, err)
		missingByThreshold[threshold] = len(outcome.Missing)
	}

	assert.Equal(t, 0, missingByThreshold[0.1])
	assert.Equal(t, 0, missingByThreshold[0.5])
	assert.Equal(t, 0, missingByThreshold[0.8]) // inclusive boundary
	assert.Equal(t, 1, missingByThreshold[0.9])
	assert.Equal(t, 1, missingByThreshold[1.0])
}

func TestMatch_EmbedderFailureIdentifiesSkill(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("backend unavailable")}

	_, err := Match(context.Background(), skillSet("go"), skillSet("rust"), 0.75, embedder)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"rust"`)
}

func TestMatch_RetrievalTimeoutPropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: &embedding.RetrievalTimeoutError{Text: "rust", Cause: context.DeadlineExceeded}}

	_, err := Match(context.Background(), skillSet("go"), skillSet("rust"), 0.75, embedder)

	require.Error(t, err)
	var timeoutErr *embedding.RetrievalTimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}
