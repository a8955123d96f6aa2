package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_LowercasesAndCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "machine learning", Clean("  Machine   Learning \t"))
	assert.Equal(t, "python", Clean("PYTHON"))
	assert.Equal(t, "", Clean("   "))
}

func TestNormalize_ResolvesSynonyms(t *testing.T) {
	canonical := map[string]string{
		"js": "javascript",
		"py": "python",
	}

	set, err := Normalize([]string{"JS", "Py"}, canonical)
	require.NoError(t, err)

	require.Len(t, set.Skills, 2)
	assert.Equal(t, "javascript", set.Skills[0].Name)
	assert.True(t, set.Skills[0].Canonical)
	assert.Equal(t, "python", set.Skills[1].Name)
	assert.True(t, set.Skills[1].Canonical)
}

func TestNormalize_CanonicalTargetsAreCanonical(t *testing.T) {
	canonical := map[string]string{"py": "python"}

	set, err := Normalize([]string{"Python"}, canonical)
	require.NoError(t, err)

	require.Len(t, set.Skills, 1)
	assert.Equal(t, "python", set.Skills[0].Name)
	assert.True(t, set.Skills[0].Canonical)
}

func TestNormalize_UnresolvedEntriesKeptAsNonCanonical(t *testing.T) {
	set, err := Normalize([]string{"Quantum  Basket Weaving"}, map[string]string{"py": "python"})
	require.NoError(t, err)

	require.Len(t, set.Skills, 1)
	assert.Equal(t, "quantum basket weaving", set.Skills[0].Name)
	assert.False(t, set.Skills[0].Canonical)
}

func TestNormalize_DeduplicatesPreservingFirstSeenOrder(t *testing.T) {
	canonical := map[string]string{"js": "javascript"}

	set, err := Normalize([]string{"SQL", "js", "JavaScript", "sql", "Go"}, canonical)
	require.NoError(t, err)

	assert.Equal(t, []string{"sql", "javascript", "go"}, set.Names())
}

func TestNormalize_SkipsEmptyEntries(t *testing.T) {
	set, err := Normalize([]string{"", "  ", "python"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, set.Names())
}

func TestNormalize_EmptyInputYieldsEmptySet(t *testing.T) {
	set, err := Normalize([]string{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestNormalize_AllEmptyEntriesFails(t *testing.T) {
	_, err := Normalize([]string{"", "   ", "\t"}, nil)

	require.Error(t, err)
	var invalidErr *InvalidInputError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestNormalize_Idempotent(t *testing.T) {
	canonical := map[string]string{
		"js":  "javascript",
		"k8s": "kubernetes",
	}

	first, err := Normalize([]string{"JS", "K8s", "Team  Work"}, canonical)
	require.NoError(t, err)

	second, err := Normalize(first.Names(), canonical)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
}
