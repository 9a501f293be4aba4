package legislation

import (
	"context"
	"log"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/talkto/internal/fetch"
	"github.com/jonathan/talkto/internal/types"
)

// Ranking policy.
const (
	MaxCategories      = 6
	SaturationCount    = 10 // Bill count at which intensity reaches 100
	MaxSubtitleLength  = 60
	congressSearchBase = "https://www.congress.gov/search?q="
)

// Aggregate groups bills by category in first-seen order.
// The catch-all category is included; Finalize drops it.
func Aggregate(bills []types.Bill) []types.CategoryActivity {
	var order []string
	byCategory := make(map[string]*types.CategoryActivity)

	for _, bill := range bills {
		name, icon := Classify(bill.Title)
		activity, ok := byCategory[name]
		if !ok {
			activity = &types.CategoryActivity{Category: name, Icon: icon, Bills: []string{}}
			byCategory[name] = activity
			order = append(order, name)
		}

		activity.Count++
		activity.Bills = append(activity.Bills, bill.Type+"."+bill.Number)

		if activity.RecentAction == "" && bill.LatestAction != nil {
			activity.RecentAction = actionText(bill.LatestAction.Text)
		}
	}

	out := make([]types.CategoryActivity, 0, len(order))
	for _, name := range order {
		out = append(out, *byCategory[name])
	}
	return out
}

// actionText reduces Congress.gov action text, which embeds roll-call links, to plain text.
func actionText(raw string) string {
	text, err := fetch.PlainText(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return text
}

// Finalize ranks activity by bill count (stable), drops the catch-all and keeps the top categories.
func Finalize(activity []types.CategoryActivity) []types.TrendingCategory {
	out := make([]types.TrendingCategory, 0, len(activity))
	for _, a := range activity {
		if a.Category == CatchAll {
			continue
		}
		out = append(out, types.TrendingCategory{
			ID:        CategoryID(a.Category),
			Title:     a.Category,
			Subtitle:  Truncate(a.RecentAction, MaxSubtitleLength),
			Intensity: Intensity(a.Count),
			Icon:      a.Icon,
			BillCount: a.Count,
			URL:       SearchURL(a.Category),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BillCount > out[j].BillCount
	})
	if len(out) > MaxCategories {
		out = out[:MaxCategories]
	}
	return out
}

// Intensity = min(100, round(count/10*100)).
func Intensity(count int) int {
	v := int(math.Round(float64(count) / SaturationCount * 100))
	if v > 100 {
		return 100
	}
	return v
}

// Truncate shortens s to max runes followed by "..." when it is longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// CategoryID lower-cases a category name and replaces whitespace runs with "-".
func CategoryID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// SearchURL links to a congress.gov search for the category name.
func SearchURL(category string) string {
	return congressSearchBase + strings.ReplaceAll(url.QueryEscape(category), "+", "%20")
}

// ServiceConfig tunes the legislative activity service. Zero values use defaults.
type ServiceConfig struct {
	BillLimit int
}

// Service fetches recent bills and ranks their categories.
type Service struct {
	source BillSource
	limit  int
	now    func() time.Time
}

// NewService creates a legislative activity service.
func NewService(source BillSource, config ServiceConfig) *Service {
	if config.BillLimit <= 0 {
		config.BillLimit = DefaultBillLimit
	}
	return &Service{source: source, limit: config.BillLimit, now: time.Now}
}

// Trending returns the ranked categories of recent legislative activity.
// There is no fallback: any failure is returned to the caller.
func (s *Service) Trending(ctx context.Context) (*types.TrendingResponse, error) {
	bills, err := s.source.RecentBills(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	trending := Finalize(Aggregate(bills))
	log.Printf("[congress] %d bills, %d categories ranked", len(bills), len(trending))

	return &types.TrendingResponse{
		Trending: trending,
		Updated:  s.now().UTC(),
	}, nil
}
