package types

import "time"

// Bill is the subset of a Congress.gov bill record used for classification.
type Bill struct {
	Congress      int           `json:"congress"`
	LatestAction  *LatestAction `json:"latestAction,omitempty"`
	Number        string        `json:"number"`
	OriginChamber string        `json:"originChamber"`
	Title         string        `json:"title"`
	Type          string        `json:"type"`
	UpdateDate    string        `json:"updateDate,omitempty"`
	URL           string        `json:"url"`
}

// LatestAction is the most recent action recorded against a bill.
type LatestAction struct {
	ActionDate string `json:"actionDate"`
	Text       string `json:"text"`
}

// BillList is the Congress.gov bill listing response.
type BillList struct {
	Bills []Bill `json:"bills"`
}

// CategoryActivity accumulates matched bills for one category while scanning a batch.
type CategoryActivity struct {
	Category     string   `json:"category"`
	Icon         string   `json:"icon"`
	Count        int      `json:"count"`
	Bills        []string `json:"bills"`
	RecentAction string   `json:"recentAction"`
}

// TrendingCategory is a finalized, ranked category of legislative activity.
type TrendingCategory struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Intensity int    `json:"intensity"`
	Icon      string `json:"icon"`
	BillCount int    `json:"billCount"`
	URL       string `json:"url"`
}

// TrendingResponse is the payload of GET /api/trending.
type TrendingResponse struct {
	Trending []TrendingCategory `json:"trending"`
	Updated  time.Time          `json:"updated"`
}
