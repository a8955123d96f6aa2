package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	path := ResolveSchemaPath("schemas/match_record.schema.json")

	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_MissingSchema(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateBytes_MissingSchemaFile(t *testing.T) {
	err := ValidateBytes(filepath.Join(t.TempDir(), "nope.json"), []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateJSON_ValidatesFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`[{"name": "go", "category": "technical"}]`), 0644))

	schemaPath := ResolveSchemaPath("schemas/extracted_skills.schema.json")
	require.NotEmpty(t, schemaPath)

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingDocument(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/extracted_skills.schema.json")
	require.NotEmpty(t, schemaPath)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "match_score", Message: "must be <= 100"},
		{Field: "role_fit", Message: "must be one of the enum values"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "match_score")
	assert.Contains(t, msg, "role_fit")
}
