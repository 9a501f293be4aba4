package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for name, schema := range ByName {
		t.Run(name, func(t *testing.T) {
			var v map[string]any
			err := json.Unmarshal([]byte(schema), &v)
			assert.NoError(t, err, "schema should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for name, schema := range ByName {
		t.Run(name, func(t *testing.T) {
			_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
			require.NoError(t, err, "schema should compile")
		})
	}
}

func TestLocalOrganizations_RejectsBadPrefix(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(LocalOrganizations))
	require.NoError(t, err)

	doc := `{"metros":{"la":{"name":"Los Angeles","zipPrefixes":["90"]}},"localOrgs":[]}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}

func TestOrganizations_RequiresWebsite(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(Organizations))
	require.NoError(t, err)

	doc := `{"categories":[{"id":"housing","name":"Housing","organizations":[{"name":"X","mission":"Y","hasLocalChapters":false}]}]}`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
