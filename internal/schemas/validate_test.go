package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name", "zipPrefixes"],
	"properties": {
		"name": {"type": "string"},
		"zipPrefixes": {"type": "array", "items": {"type": "string", "pattern": "^[0-9]{3}$"}}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name":"Los Angeles","zipPrefixes":["900","902"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name":"Los Angeles"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name":"Los Angeles","zipPrefixes":[902]}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "zipPrefixes.0")
}

func TestValidateBytes_PatternMismatch(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{"name":"Los Angeles","zipPrefixes":["9021"]}`))
	assert.Error(t, err)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(testSchema, []byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "metro.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Chicago","zipPrefixes":["606"]}`), 0644))

	assert.NoError(t, ValidateFile(testSchema, path))
}

func TestValidateFile_NonExistent(t *testing.T) {
	err := ValidateFile(testSchema, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "metros.la.name", Message: "String length must be greater than or equal to 1"},
	}}
	assert.Equal(t, "validation failed:\n  1. metros.la.name: String length must be greater than or equal to 1\n", err.Error())
}
