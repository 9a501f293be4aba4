package legislation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talkto/internal/fetch"
)

const billsBody = `{"bills":[
	{"congress":119,"number":"1968","originChamber":"House","title":"Full-Year Continuing Appropriations and Extensions Act, 2025","type":"HR","updateDate":"2025-03-15","url":"https://api.congress.gov/v3/bill/119/hr/1968?format=json","latestAction":{"actionDate":"2025-03-15","text":"Became Public Law No: 119-4."}},
	{"congress":119,"number":"5","originChamber":"Senate","title":"Laken Riley Act","type":"S","url":"https://api.congress.gov/v3/bill/119/s/5?format=json"}
]}`

func congressServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/v3/bill", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "updateDate desc", r.URL.Query().Get("sort"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestCongressClient_RecentBills(t *testing.T) {
	server, _ := congressServer(t, http.StatusOK, billsBody)
	client := NewCongressClient(server.URL, "test-key", nil)

	bills, err := client.RecentBills(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "HR", bills[0].Type)
	assert.Equal(t, "1968", bills[0].Number)
	require.NotNil(t, bills[0].LatestAction)
	assert.Equal(t, "Became Public Law No: 119-4.", bills[0].LatestAction.Text)
	assert.Nil(t, bills[1].LatestAction)
}

func TestCongressClient_MissingKeyMakesNoCall(t *testing.T) {
	server, hits := congressServer(t, http.StatusOK, billsBody)
	client := NewCongressClient(server.URL, "", nil)

	_, err := client.RecentBills(context.Background(), 50)

	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Equal(t, int32(0), hits.Load())
}

func TestCongressClient_CachesListing(t *testing.T) {
	server, hits := congressServer(t, http.StatusOK, billsBody)
	fetcher := fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
		CacheTTL: time.Hour,
		Options:  fetch.DefaultOptions().WithHeader("Accept", "application/json"),
	})
	client := NewCongressClient(server.URL, "test-key", fetcher)

	_, err := client.RecentBills(context.Background(), 50)
	require.NoError(t, err)
	_, err = client.RecentBills(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, time.Hour, client.CacheTTL())
}

func TestCongressClient_UpstreamError(t *testing.T) {
	server, _ := congressServer(t, http.StatusForbidden, `{"error":"API_KEY_INVALID"}`)
	client := NewCongressClient(server.URL, "test-key", nil)

	_, err := client.RecentBills(context.Background(), 50)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.NotContains(t, err.Error(), "test-key")
}

func TestCongressClient_MalformedBody(t *testing.T) {
	server, _ := congressServer(t, http.StatusOK, `not json`)
	client := NewCongressClient(server.URL, "test-key", nil)

	_, err := client.RecentBills(context.Background(), 50)

	assert.Error(t, err)
}

func TestService_EndToEnd(t *testing.T) {
	server, _ := congressServer(t, http.StatusOK, billsBody)
	svc := NewService(NewCongressClient(server.URL, "test-key", nil), ServiceConfig{})

	resp, err := svc.Trending(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Trending, 1)
	assert.Equal(t, "Government Funding", resp.Trending[0].Title)
	assert.Equal(t, "Became Public Law No: 119-4.", resp.Trending[0].Subtitle)
}
