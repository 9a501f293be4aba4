package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, body string, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestDefaultCachedFetcherConfig(t *testing.T) {
	config := DefaultCachedFetcherConfig()
	require.NotNil(t, config)
	assert.Equal(t, time.Hour, config.CacheTTL)
	assert.Positive(t, config.CacheSize)
	assert.False(t, config.SkipCache)
	assert.NotNil(t, config.Options)
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	f := NewCachedFetcher(nil)
	require.NotNil(t, f)
	assert.Equal(t, DefaultCacheTTL, f.TTL())
}

func TestCachedFetcher_ServesFromCache(t *testing.T) {
	server, hits := countingServer(t, `{"n":1}`, http.StatusOK)
	f := NewCachedFetcher(nil)

	first, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCachedFetcher_DoesNotCacheFailures(t *testing.T) {
	server, hits := countingServer(t, `oops`, http.StatusInternalServerError)
	f := NewCachedFetcher(nil)

	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	_, err = f.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedFetcher_SkipCache(t *testing.T) {
	server, hits := countingServer(t, `{}`, http.StatusOK)
	f := NewCachedFetcher(&CachedFetcherConfig{SkipCache: true})

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestCachedFetcher_Expires(t *testing.T) {
	server, hits := countingServer(t, `{}`, http.StatusOK)
	f := NewCachedFetcher(&CachedFetcherConfig{CacheTTL: 20 * time.Millisecond})

	_, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	_, err = f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedFetcher_FetchJSONEvictsUndecodable(t *testing.T) {
	server, hits := countingServer(t, `not json`, http.StatusOK)
	f := NewCachedFetcher(nil)

	var out map[string]any
	_, err := f.FetchJSON(context.Background(), server.URL, &out)
	require.Error(t, err)
	_, err = f.FetchJSON(context.Background(), server.URL, &out)
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedFetcher_InvalidateCache(t *testing.T) {
	server, hits := countingServer(t, `{"a":1}`, http.StatusOK)
	f := NewCachedFetcher(nil)

	var out map[string]int
	fromCache, err := f.FetchJSON(context.Background(), server.URL, &out)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 1, out["a"])

	f.InvalidateCache(server.URL)
	fromCache, err = f.FetchJSON(context.Background(), server.URL, &out)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, int32(2), hits.Load())
}
