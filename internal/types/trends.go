package types

import "time"

// Source labels reported by the public trends endpoint.
const (
	SourceGoogleTrends = "Google Trends"
	SourceCurated      = "Curated"
)

// Search volume labels.
const (
	VolumeHigh   = "High"
	VolumeMedium = "Medium"
	VolumeLow    = "Low"
)

// CivicTopic is a candidate search term tracked by the public trends panel.
type CivicTopic struct {
	Term string `json:"term"`
	Icon string `json:"icon"`
}

// TopicScore is the interest score of one civic topic.
type TopicScore struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	SearchVolume string `json:"searchVolume"`
	Intensity    int    `json:"intensity"` // 0-100
	Icon         string `json:"icon"`
	URL          string `json:"url"`
}

// PublicTrendsResponse is the payload of GET /api/public-trends.
type PublicTrendsResponse struct {
	Trends  []TopicScore `json:"trends"`
	Updated time.Time    `json:"updated"`
	Source  string       `json:"source"`
}
