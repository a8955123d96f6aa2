package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadVocabulary_ValidFile(t *testing.T) {
	path := writeVocabFile(t, `{
		"technical": ["python", "sql"],
		"soft": ["communication"],
		"synonyms": {"py": "python"}
	}`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql"}, vocab.Technical)
	assert.Equal(t, []string{"communication"}, vocab.Soft)
	assert.Equal(t, "python", vocab.Synonyms["py"])
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadVocabulary_InvalidJSON(t *testing.T) {
	path := writeVocabFile(t, `{not json`)

	_, err := LoadVocabulary(path)
	assert.Error(t, err)
}

func TestCanonicalMap_IncludesNamesAndSynonyms(t *testing.T) {
	vocab := &Vocabulary{
		Technical: []string{"Python"},
		Soft:      []string{"Teamwork"},
		Synonyms:  map[string]string{"Py": "Python"},
	}

	m := vocab.CanonicalMap()

	assert.Equal(t, "python", m["python"])
	assert.Equal(t, "teamwork", m["teamwork"])
	assert.Equal(t, "python", m["py"])
}

func TestCategorize_AssignsCategories(t *testing.T) {
	vocab := &Vocabulary{
		Technical: []string{"python"},
		Soft:      []string{"communication"},
	}

	set := types.SkillSet{Skills: []types.Skill{
		{Name: "python", Canonical: true},
		{Name: "communication", Canonical: true},
		{Name: "underwater welding", Canonical: false},
	}}

	out := vocab.Categorize(set)

	assert.Equal(t, types.CategoryTechnical, out.Skills[0].Category)
	assert.Equal(t, types.CategorySoft, out.Skills[1].Category)
	assert.Empty(t, out.Skills[2].Category)

	// Input set is untouched.
	assert.Empty(t, set.Skills[0].Category)
}
