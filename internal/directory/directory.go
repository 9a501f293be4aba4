// Package directory answers metro and advocacy-organization lookups over the
// embedded reference datasets.
package directory

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/talkto/internal/schemas"
	"github.com/jonathan/talkto/internal/types"
	datasets "github.com/jonathan/talkto/schemas"
)

//go:embed data/organizations.json
var organizationsJSON []byte

//go:embed data/local_organizations.json
var localOrganizationsJSON []byte

// ErrUnknownCategory indicates a category id that is not in the dataset.
var ErrUnknownCategory = errors.New("unknown issue category")

// PrefixLength is the number of leading zip digits that identify a metro.
const PrefixLength = 3

// PopularIssues are the quick-select issues offered before a category is chosen.
var PopularIssues = []types.IssueTile{
	{ID: "environment", Icon: "🌍", Label: "Environment"},
	{ID: "voting-rights", Icon: "🗳️", Label: "Voting Rights"},
	{ID: "civil-rights", Icon: "✊", Label: "Civil Rights"},
	{ID: "healthcare", Icon: "🏥", Label: "Healthcare"},
	{ID: "education", Icon: "📚", Label: "Education"},
	{ID: "housing", Icon: "🏠", Label: "Housing"},
}

// DataError reports a dataset that parsed but violates an integrity rule.
type DataError struct {
	Dataset string
	Message string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Dataset, e.Message)
}

// Directory is the read-only, loaded form of both datasets.
type Directory struct {
	categories []types.IssueCategory
	byCategory map[string]int
	metros     map[string]types.Metro
	metroIDs   []string
	local      []types.LocalOrgGroup
}

// Load parses the embedded datasets.
func Load() (*Directory, error) {
	return Parse(organizationsJSON, localOrganizationsJSON)
}

// LoadFiles parses datasets from disk. An empty path uses the embedded dataset.
func LoadFiles(organizationsPath, localOrganizationsPath string) (*Directory, error) {
	orgs, local := organizationsJSON, localOrganizationsJSON
	var err error
	if organizationsPath != "" {
		if orgs, err = os.ReadFile(organizationsPath); err != nil {
			return nil, fmt.Errorf("failed to read organizations dataset: %w", err)
		}
	}
	if localOrganizationsPath != "" {
		if local, err = os.ReadFile(localOrganizationsPath); err != nil {
			return nil, fmt.Errorf("failed to read local organizations dataset: %w", err)
		}
	}
	return Parse(orgs, local)
}

// Parse validates both datasets against their schemas and builds a Directory.
// Zip prefixes must be disjoint across metros, and every local group must
// reference a known metro and category.
func Parse(organizations, localOrganizations []byte) (*Directory, error) {
	if err := schemas.ValidateBytes(datasets.Organizations, organizations); err != nil {
		return nil, fmt.Errorf("organizations.json: %w", err)
	}
	if err := schemas.ValidateBytes(datasets.LocalOrganizations, localOrganizations); err != nil {
		return nil, fmt.Errorf("local_organizations.json: %w", err)
	}

	var orgs types.OrganizationsData
	if err := json.Unmarshal(organizations, &orgs); err != nil {
		return nil, fmt.Errorf("failed to decode organizations.json: %w", err)
	}
	var local types.LocalOrganizationsData
	if err := json.Unmarshal(localOrganizations, &local); err != nil {
		return nil, fmt.Errorf("failed to decode local_organizations.json: %w", err)
	}

	d := &Directory{
		categories: orgs.Categories,
		byCategory: make(map[string]int, len(orgs.Categories)),
		metros:     make(map[string]types.Metro, len(local.Metros)),
		local:      local.LocalOrgs,
	}

	for i, c := range orgs.Categories {
		if _, dup := d.byCategory[c.ID]; dup {
			return nil, &DataError{Dataset: "organizations.json", Message: fmt.Sprintf("duplicate category %q", c.ID)}
		}
		d.byCategory[c.ID] = i
	}

	owner := make(map[string]string)
	for id, m := range local.Metros {
		m.ID = id
		d.metros[id] = m
		d.metroIDs = append(d.metroIDs, id)
	}
	sort.Strings(d.metroIDs)

	for _, id := range d.metroIDs {
		for _, prefix := range d.metros[id].ZipPrefixes {
			if other, taken := owner[prefix]; taken {
				return nil, &DataError{
					Dataset: "local_organizations.json",
					Message: fmt.Sprintf("zip prefix %s claimed by both %s and %s", prefix, other, id),
				}
			}
			owner[prefix] = id
		}
	}

	for _, g := range local.LocalOrgs {
		if _, ok := d.metros[g.Metro]; !ok {
			return nil, &DataError{Dataset: "local_organizations.json", Message: fmt.Sprintf("unknown metro %q", g.Metro)}
		}
		if _, ok := d.byCategory[g.Category]; !ok {
			return nil, &DataError{Dataset: "local_organizations.json", Message: fmt.Sprintf("unknown category %q", g.Category)}
		}
	}

	return d, nil
}

// MetroForZip returns the metro whose prefixes contain the zip's first three
// digits, or nil when no metro claims it.
func (d *Directory) MetroForZip(zip string) *types.Metro {
	zip = strings.TrimSpace(zip)
	if len(zip) < PrefixLength {
		return nil
	}
	prefix := zip[:PrefixLength]

	for _, id := range d.metroIDs {
		m := d.metros[id]
		for _, p := range m.ZipPrefixes {
			if p == prefix {
				return &m
			}
		}
	}
	return nil
}

// LocalOrganizations returns the organizations listed for a (metro, category)
// pair. No match yields an empty list.
func (d *Directory) LocalOrganizations(metroID, categoryID string) []types.Organization {
	for _, g := range d.local {
		if g.Metro == metroID && g.Category == categoryID {
			out := make([]types.Organization, len(g.Organizations))
			copy(out, g.Organizations)
			return out
		}
	}
	return []types.Organization{}
}

// Category looks up an issue category by id.
func (d *Directory) Category(id string) (types.IssueCategory, bool) {
	i, ok := d.byCategory[id]
	if !ok {
		return types.IssueCategory{}, false
	}
	return d.categories[i], true
}

// Categories returns every issue category in dataset order.
func (d *Directory) Categories() []types.IssueCategory {
	out := make([]types.IssueCategory, len(d.categories))
	copy(out, d.categories)
	return out
}

// Metros returns every metro sorted by id.
func (d *Directory) Metros() []types.Metro {
	out := make([]types.Metro, 0, len(d.metroIDs))
	for _, id := range d.metroIDs {
		out = append(out, d.metros[id])
	}
	return out
}

// Recommend gathers local and national organizations for a category,
// localized by zip when one is given.
func (d *Directory) Recommend(categoryID, zip string) (*types.Recommendation, error) {
	category, ok := d.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}

	rec := &types.Recommendation{
		Category:  category,
		Local:     []types.Organization{},
		National:  category.Organizations,
		SearchURL: SearchMoreURL(category.Name, zip),
	}
	if rec.National == nil {
		rec.National = []types.Organization{}
	}

	if m := d.MetroForZip(zip); m != nil {
		rec.Metro = &types.MetroRef{ID: m.ID, Name: m.Name}
		rec.Local = d.LocalOrganizations(m.ID, category.ID)
	}

	return rec, nil
}

// SearchMoreURL is a web search for nonprofits working on the issue near the zip code.
func SearchMoreURL(categoryName, zip string) string {
	q := categoryName + " nonprofit organizations"
	if zip = strings.TrimSpace(zip); zip != "" {
		q += " near " + zip
	} else {
		q += " near me"
	}
	return "https://www.google.com/search?q=" + strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}
