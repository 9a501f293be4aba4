package fetch

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCacheTTL matches the one-hour revalidation window of upstream listings.
const DefaultCacheTTL = time.Hour

// DefaultCacheSize bounds the number of cached responses.
const DefaultCacheSize = 128

// CachedFetcher wraps URL fetching with an in-memory, expiring response cache.
// Only successful responses are cached.
type CachedFetcher struct {
	cache     *expirable.LRU[string, *Result]
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	CacheSize int
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		CacheSize: DefaultCacheSize,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	return &CachedFetcher{
		cache:     expirable.NewLRU[string, *Result](config.CacheSize, nil, config.CacheTTL),
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool // Whether this result came from cache
}

// TTL returns how long responses stay cached.
func (f *CachedFetcher) TTL() time.Duration {
	return f.cacheTTL
}

// Fetch retrieves a URL, using the cache if a fresh entry exists.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if cached, ok := f.cache.Get(urlStr); ok {
			return &CachedResult{Result: cached, FromCache: true}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options.WithHeader("Accept", "application/json"))
	if err != nil {
		return nil, err
	}

	if !f.skipCache {
		f.cache.Add(urlStr, result)
	}

	return &CachedResult{Result: result, FromCache: false}, nil
}

// FetchJSON retrieves a URL through the cache and decodes it into v.
// A body that fails to decode is evicted so the next call refetches.
func (f *CachedFetcher) FetchJSON(ctx context.Context, urlStr string, v any) (fromCache bool, err error) {
	result, err := f.Fetch(ctx, urlStr)
	if err != nil {
		return false, err
	}
	if err := Decode(result.Result, v); err != nil {
		f.InvalidateCache(urlStr)
		return result.FromCache, err
	}
	return result.FromCache, nil
}

// InvalidateCache drops a cached response, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.cache.Remove(urlStr)
}

// Purge drops every cached response.
func (f *CachedFetcher) Purge() {
	f.cache.Purge()
}
