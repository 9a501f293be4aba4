// Package schemas embeds the JSON Schemas for the reference datasets.
package schemas

import _ "embed"

// Organizations is the schema of organizations.json.
//
//go:embed organizations.schema.json
var Organizations string

// LocalOrganizations is the schema of local_organizations.json.
//
//go:embed local_organizations.schema.json
var LocalOrganizations string

// ByName maps dataset file names to their schemas.
var ByName = map[string]string{
	"organizations.json":       Organizations,
	"local_organizations.json": LocalOrganizations,
}
