// Package schemas provides JSON Schema validation for structured data artifacts.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions: relative to the working directory, then one and two
// levels up. Returns the first path that exists, or empty string if none
// found. Useful when CLI commands run from different working directories
// (e.g. tests).
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message)
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(parts, "; "))
}

// ValidateBytes validates a JSON document held in memory against the schema
// at schemaPath. Returns *ValidationError when the document does not conform.
func ValidateBytes(schemaPath string, document []byte) error {
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{}
		for _, resultErr := range result.Errors() {
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   resultErr.Field(),
				Message: resultErr.Description(),
			})
		}
		return validationErr
	}

	return nil
}

// ValidateJSON validates a JSON file on disk against the schema at schemaPath.
func ValidateJSON(schemaPath, documentPath string) error {
	document, err := os.ReadFile(documentPath)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", documentPath, err)
	}
	return ValidateBytes(schemaPath, document)
}
