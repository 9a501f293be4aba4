package types

// Organization is a national or local advocacy organization.
type Organization struct {
	Name             string `json:"name"`
	Mission          string `json:"mission"`
	Website          string `json:"website"`
	HasLocalChapters bool   `json:"hasLocalChapters"`
	ChapterFinderURL string `json:"chapterFinderUrl,omitempty"`
}

// IssueCategory groups national organizations under one issue.
type IssueCategory struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Organizations []Organization `json:"organizations"`
}

// OrganizationsData is the organizations-by-category dataset.
type OrganizationsData struct {
	Categories []IssueCategory `json:"categories"`
}

// Metro is a metropolitan area and the 3-digit zip prefixes mapped to it.
type Metro struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ZipPrefixes []string `json:"zipPrefixes"`
}

// LocalOrgGroup lists local organizations for one (metro, category) pair.
type LocalOrgGroup struct {
	Metro         string         `json:"metro"`
	Category      string         `json:"category"`
	Organizations []Organization `json:"organizations"`
}

// LocalOrganizationsData is the metros-with-zip-prefixes-and-local-orgs dataset.
// Metro IDs are the keys of Metros.
type LocalOrganizationsData struct {
	Metros    map[string]Metro `json:"metros"`
	LocalOrgs []LocalOrgGroup  `json:"localOrgs"`
}

// IssueTile is a quick-select issue shown before a category is chosen.
type IssueTile struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// MetroRef identifies the metro a zip code resolved to.
type MetroRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Recommendation is the organization directory answer for a (category, zip) query.
type Recommendation struct {
	Category  IssueCategory  `json:"category"`
	Metro     *MetroRef      `json:"metro"`
	Local     []Organization `json:"local"`
	National  []Organization `json:"national"`
	SearchURL string         `json:"searchUrl"`
}
