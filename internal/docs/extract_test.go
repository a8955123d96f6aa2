package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText([]byte("  Python developer with SQL experience.  \n"), ".txt")
	require.NoError(t, err)

	assert.Equal(t, "Python developer with SQL experience.", text)
}

func TestExtractText_NoExtensionTreatedAsText(t *testing.T) {
	text, err := ExtractText([]byte("plain content"), "")
	require.NoError(t, err)

	assert.Equal(t, "plain content", text)
}

func TestExtractText_HTMLStripsMarkupAndScripts(t *testing.T) {
	html := `<html><head>
		<style>body { color: red; }</style>
		<script>alert("hi")</script>
	</head><body>
		<h1>Backend Engineer</h1>
		<p>We need <b>Python</b> and SQL.</p>
		<noscript>enable js</noscript>
	</body></html>`

	text, err := ExtractText([]byte(html), ".html")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer We need Python and SQL.", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText([]byte("<p>hello</p>"), ".HTML")
	require.NoError(t, err)

	assert.Equal(t, "hello", text)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText([]byte("binary"), ".xls")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractText_MalformedPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf"), ".pdf")
	assert.Error(t, err)
}

func TestExtractText_MalformedDocx(t *testing.T) {
	_, err := ExtractText([]byte("not a docx"), ".docx")
	assert.Error(t, err)
}

func TestExtractFile_BuildsDocumentRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer, knows SQL"), 0644))

	doc, err := ExtractFile(path, types.DocTypeResume)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.DocID)
	assert.Equal(t, types.DocTypeResume, doc.DocType)
	assert.Equal(t, "Python developer, knows SQL", doc.Text)
	assert.Equal(t, 4, doc.WordCount)
	assert.Equal(t, "resume.txt", doc.FileName)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.Equal(t, "v1.0", doc.ProcessedBy)
}

func TestExtractFile_UniqueDocIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("needs go"), 0644))

	first, err := ExtractFile(path, types.DocTypeJob)
	require.NoError(t, err)
	second, err := ExtractFile(path, types.DocTypeJob)
	require.NoError(t, err)

	assert.NotEqual(t, first.DocID, second.DocID)
}

func TestExtractFile_MissingFile(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.txt"), types.DocTypeResume)
	assert.Error(t, err)
}
