// Package metrics provides Prometheus metrics for talkto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream names used as label values.
const (
	UpstreamReps     = "representatives"
	UpstreamTrends   = "google_trends"
	UpstreamCongress = "congress"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// UpstreamRequestsTotal counts calls to external APIs.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talkto",
			Name:      "upstream_requests_total",
			Help:      "Total number of requests to upstream APIs",
		},
		[]string{"upstream", "status"},
	)

	// UpstreamDuration measures upstream call duration.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "talkto",
			Name:      "upstream_duration_seconds",
			Help:      "Duration of upstream API calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	// FallbacksTotal counts responses served from curated fallback data.
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talkto",
			Name:      "fallbacks_total",
			Help:      "Total number of responses served from curated fallback data",
		},
		[]string{"panel"},
	)

	// CacheLookupsTotal counts response cache lookups by result.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talkto",
			Name:      "cache_lookups_total",
			Help:      "Total number of upstream response cache lookups",
		},
		[]string{"upstream", "result"},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talkto",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "route", "code"},
	)
)

// RecordUpstream records one upstream call.
func RecordUpstream(upstream string, err error, seconds float64) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, status).Inc()
	UpstreamDuration.WithLabelValues(upstream).Observe(seconds)
}

// RecordFallback records a response served from fallback data.
func RecordFallback(panel string) {
	FallbacksTotal.WithLabelValues(panel).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(upstream string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(upstream, result).Inc()
}

// RecordHTTPRequest records a served HTTP request.
func RecordHTTPRequest(method, route, code string) {
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}
