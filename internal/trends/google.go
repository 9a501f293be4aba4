package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/talkto/internal/fetch"
)

// DefaultGoogleTrendsURL is the base URL of the Google Trends web API.
const DefaultGoogleTrendsURL = "https://trends.google.com"

// Query selects an interest-over-time series.
type Query struct {
	Keyword string
	Geo     string
	Window  time.Duration // Trailing window ending now
}

// InterestSource returns the raw interest series (0-100) for a query.
type InterestSource interface {
	InterestOverTime(ctx context.Context, q Query) ([]int, error)
}

// GoogleTrendsClient reads interest over time from the Google Trends web API.
// It performs the explore request to obtain a widget token, then fetches the
// timeseries widget data.
type GoogleTrendsClient struct {
	baseURL  string
	options  *fetch.Options
	hl       string
	tzOffset int
	now      func() time.Time
}

// NewGoogleTrendsClient creates a client. An empty baseURL uses DefaultGoogleTrendsURL.
func NewGoogleTrendsClient(baseURL string, timeout time.Duration) *GoogleTrendsClient {
	if baseURL == "" {
		baseURL = DefaultGoogleTrendsURL
	}
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	// Google sets a session cookie on the explore call that widget requests expect.
	jar, _ := cookiejar.New(nil)
	opts := fetch.DefaultOptions()
	opts.Client = &http.Client{Timeout: timeout, Jar: jar}

	return &GoogleTrendsClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		options: opts,
		hl:      "en-US",
		now:     time.Now,
	}
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []struct {
			Time          string `json:"time"`
			FormattedTime string `json:"formattedTime"`
			Value         []int  `json:"value"`
		} `json:"timelineData"`
	} `json:"default"`
}

// InterestOverTime implements InterestSource.
func (c *GoogleTrendsClient) InterestOverTime(ctx context.Context, q Query) ([]int, error) {
	reqJSON, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: q.Keyword, Geo: q.Geo, Time: c.timeSpec(q.Window)}},
		Property:       "",
	})
	if err != nil {
		return nil, &Error{Topic: q.Keyword, Message: "failed to encode explore request", Cause: err}
	}

	var explore exploreResponse
	if err := c.getGuarded(ctx, "/trends/api/explore", url.Values{"req": {string(reqJSON)}}, &explore); err != nil {
		return nil, &Error{Topic: q.Keyword, Message: "explore request failed", Cause: err}
	}

	for _, w := range explore.Widgets {
		if w.ID != "TIMESERIES" {
			continue
		}
		var series multilineResponse
		params := url.Values{"req": {string(w.Request)}, "token": {w.Token}}
		if err := c.getGuarded(ctx, "/trends/api/widgetdata/multiline", params, &series); err != nil {
			return nil, &Error{Topic: q.Keyword, Message: "timeseries request failed", Cause: err}
		}
		values := make([]int, 0, len(series.Default.TimelineData))
		for _, point := range series.Default.TimelineData {
			if len(point.Value) > 0 {
				values = append(values, point.Value[0])
			}
		}
		return values, nil
	}

	return nil, &Error{Topic: q.Keyword, Message: "no timeseries widget in explore response"}
}

// getGuarded fetches a Trends API path and decodes the JSON that follows the
// anti-XSSI prefix Google prepends to every response.
func (c *GoogleTrendsClient) getGuarded(ctx context.Context, path string, params url.Values, v any) error {
	params.Set("hl", c.hl)
	params.Set("tz", fmt.Sprintf("%d", c.tzOffset))

	result, err := fetch.URL(ctx, c.baseURL+path+"?"+params.Encode(), c.options)
	if err != nil {
		return err
	}
	body := stripXSSIPrefix(result.Body)
	if err := json.Unmarshal(body, v); err != nil {
		return &fetch.Error{URL: result.URL, Message: "invalid JSON response", Cause: err}
	}
	return nil
}

// timeSpec renders a trailing window in the Trends "time" syntax.
func (c *GoogleTrendsClient) timeSpec(window time.Duration) string {
	switch window {
	case time.Hour:
		return "now 1-H"
	case 4 * time.Hour:
		return "now 4-H"
	case 24 * time.Hour:
		return "now 1-d"
	case 0, 7 * 24 * time.Hour:
		return "now 7-d"
	}
	end := c.now().UTC()
	start := end.Add(-window)
	return start.Format("2006-01-02") + " " + end.Format("2006-01-02")
}

func stripXSSIPrefix(body []byte) []byte {
	if i := bytes.IndexByte(body, '{'); i > 0 {
		return body[i:]
	}
	return body
}
