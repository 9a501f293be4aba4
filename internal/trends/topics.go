// Package trends scores public search interest in a fixed set of civic topics.
package trends

import (
	"net/url"
	"strings"

	"github.com/jonathan/talkto/internal/types"
)

// CivicTopics are the candidate topics tracked by the public interest panel.
var CivicTopics = []types.CivicTopic{
	{Term: "Immigration", Icon: "🛂"},
	{Term: "Economy inflation", Icon: "💰"},
	{Term: "Healthcare costs", Icon: "🏥"},
	{Term: "Climate change", Icon: "🌍"},
	{Term: "Education policy", Icon: "📚"},
	{Term: "Housing crisis", Icon: "🏠"},
	{Term: "Gun control", Icon: "🚨"},
	{Term: "Social Security", Icon: "👴"},
	{Term: "Student loans", Icon: "🎓"},
	{Term: "Minimum wage", Icon: "💼"},
}

// Defaults for the aggregation policy.
const (
	DefaultQueryCount   = 6  // Leading candidates queried; not the top scorers of all ten
	DefaultMinResults   = 4  // Fewer successful topics than this serves curated data
	DefaultMaxResults   = 6  // Topics returned
	NeutralScore        = 50 // Score of a topic whose series is empty or unavailable
	DefaultGeo          = "US"
	highVolumeThreshold = 70
	midVolumeThreshold  = 40
)

// CuratedTopics is served when live trend data is unavailable or insufficient.
var CuratedTopics = []types.TopicScore{
	{ID: "economy", Title: "Economy", SearchVolume: types.VolumeHigh, Intensity: 82, Icon: "💰", URL: "https://trends.google.com/trends/explore?q=economy%20inflation&geo=US"},
	{ID: "immigration", Title: "Immigration", SearchVolume: types.VolumeHigh, Intensity: 78, Icon: "🛂", URL: "https://trends.google.com/trends/explore?q=immigration&geo=US"},
	{ID: "healthcare", Title: "Healthcare", SearchVolume: types.VolumeHigh, Intensity: 71, Icon: "🏥", URL: "https://trends.google.com/trends/explore?q=healthcare%20costs&geo=US"},
	{ID: "housing", Title: "Housing", SearchVolume: types.VolumeMedium, Intensity: 64, Icon: "🏠", URL: "https://trends.google.com/trends/explore?q=housing%20crisis&geo=US"},
	{ID: "education", Title: "Education", SearchVolume: types.VolumeMedium, Intensity: 55, Icon: "📚", URL: "https://trends.google.com/trends/explore?q=education%20policy&geo=US"},
	{ID: "climate", Title: "Climate", SearchVolume: types.VolumeMedium, Intensity: 48, Icon: "🌍", URL: "https://trends.google.com/trends/explore?q=climate%20change&geo=US"},
}

// VolumeLabel maps an interest score to a coarse label.
func VolumeLabel(score int) string {
	switch {
	case score >= highVolumeThreshold:
		return types.VolumeHigh
	case score >= midVolumeThreshold:
		return types.VolumeMedium
	default:
		return types.VolumeLow
	}
}

// TopicID slugs a search term: lower case, whitespace runs replaced by "-".
func TopicID(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), "-")
}

// TopicTitle is the first word of the search term.
func TopicTitle(term string) string {
	words := strings.Fields(term)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// ExploreURL links to the Google Trends explore page for a term over the last week.
func ExploreURL(term, geo string) string {
	return "https://trends.google.com/trends/explore?q=" + encodeURIComponent(term) +
		"&geo=" + encodeURIComponent(geo) + "&date=now%207-d"
}

// encodeURIComponent escapes s for use in a query value, encoding spaces as %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// NewTopicScore builds the scored form of a topic.
func NewTopicScore(topic types.CivicTopic, geo string, score int) types.TopicScore {
	return types.TopicScore{
		ID:           TopicID(topic.Term),
		Title:        TopicTitle(topic.Term),
		SearchVolume: VolumeLabel(score),
		Intensity:    score,
		Icon:         topic.Icon,
		URL:          ExploreURL(topic.Term, geo),
	}
}
