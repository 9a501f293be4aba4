// Package legislation ranks categories of recent congressional activity.
package legislation

import "strings"

// CatchAll is the category of bills matching no keyword set. It never appears in ranked output.
const CatchAll = "Legislation"

const catchAllIcon = "📜"

// Category is a named keyword set. A bill title containing any keyword belongs to it.
type Category struct {
	Name     string
	Icon     string
	Keywords []string
}

// Categories are evaluated in order; the first match wins.
var Categories = []Category{
	{Name: "Government Funding", Icon: "💰", Keywords: []string{"appropriation", "funding", "budget"}},
	{Name: "Healthcare", Icon: "🏥", Keywords: []string{"health", "medicare", "drug", "medical"}},
	{Name: "Immigration", Icon: "🛂", Keywords: []string{"immigra", "border", "visa"}},
	{Name: "Climate & Energy", Icon: "🌍", Keywords: []string{"climate", "energy", "environment", "emission"}},
	{Name: "Education", Icon: "📚", Keywords: []string{"education", "student", "school", "college"}},
	{Name: "Defense & Veterans", Icon: "🎖️", Keywords: []string{"veteran", "military", "defense", "armed forces"}},
	{Name: "Taxes", Icon: "📊", Keywords: []string{"tax", "revenue"}},
	{Name: "Security & Privacy", Icon: "🔒", Keywords: []string{"security", "cyber", "privacy"}},
	{Name: "Housing", Icon: "🏠", Keywords: []string{"housing", "rent", "mortgage"}},
	{Name: "Infrastructure", Icon: "🚧", Keywords: []string{"infrastructure", "transport", "highway", "rail"}},
	{Name: "Social Security", Icon: "👴", Keywords: []string{"social security", "retirement", "pension"}},
	{Name: "Jobs & Labor", Icon: "💼", Keywords: []string{"job", "employment", "labor", "worker", "wage"}},
}

func (c Category) matches(title string) bool {
	for _, kw := range c.Keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Classify returns the category name and icon for a bill title.
// Matching is case-insensitive substring search.
func Classify(title string) (name, icon string) {
	lower := strings.ToLower(title)
	for _, c := range Categories {
		if c.matches(lower) {
			return c.Name, c.Icon
		}
	}
	return CatchAll, catchAllIcon
}
