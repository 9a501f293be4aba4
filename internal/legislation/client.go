package legislation

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/talkto/internal/fetch"
	"github.com/jonathan/talkto/internal/metrics"
	"github.com/jonathan/talkto/internal/types"
)

// DefaultCongressURL is the Congress.gov API base URL.
const DefaultCongressURL = "https://api.congress.gov"

// DefaultBillLimit is the number of recently updated bills scanned per request.
const DefaultBillLimit = 50

// BillSource lists recently updated bills.
type BillSource interface {
	RecentBills(ctx context.Context, limit int) ([]types.Bill, error)
}

// CongressClient reads bill listings from the Congress.gov API through a response cache.
type CongressClient struct {
	baseURL string
	apiKey  string
	fetcher *fetch.CachedFetcher
}

// NewCongressClient creates a client. An empty apiKey is accepted; calls then
// fail with ErrMissingAPIKey so the problem surfaces per request, not at startup.
func NewCongressClient(baseURL, apiKey string, fetcher *fetch.CachedFetcher) *CongressClient {
	if baseURL == "" {
		baseURL = DefaultCongressURL
	}
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
			Options: fetch.DefaultOptions().WithHeader("Accept", "application/json"),
		})
	}
	return &CongressClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		fetcher: fetcher,
	}
}

// CacheTTL reports how long bill listings are cached.
func (c *CongressClient) CacheTTL() time.Duration {
	return c.fetcher.TTL()
}

// RecentBills returns up to limit bills, most recently updated first.
func (c *CongressClient) RecentBills(ctx context.Context, limit int) ([]types.Bill, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if limit <= 0 {
		limit = DefaultBillLimit
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("api_key", c.apiKey)
	// sort's "+" is literal in the Congress.gov syntax.
	endpoint := c.baseURL + "/v3/bill?sort=updateDate+desc&" + params.Encode()

	start := time.Now()
	var list types.BillList
	fromCache, err := c.fetcher.FetchJSON(ctx, endpoint, &list)
	metrics.RecordCacheLookup(metrics.UpstreamCongress, fromCache)
	if !fromCache {
		metrics.RecordUpstream(metrics.UpstreamCongress, err, time.Since(start).Seconds())
	}
	if err != nil {
		log.Printf("[congress] bill listing failed: %v", err)
		return nil, &FetchError{Message: "bill listing failed", Cause: err}
	}

	return list.Bills, nil
}
