package ratelimit

import "net/http"

// DefaultTier names the shared bucket of requests that match no endpoint configuration.
const DefaultTier = "default"

// unlimitedPaths are probes and scrapes that are never limited.
var unlimitedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MatchEndpoint returns the configuration whose path and method equal the
// request's, or nil. Unlimited paths get a zero-limit configuration.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimitedPaths[path] && method == http.MethodGet {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}
	return nil
}

// tierKey names the bucket a request is charged to. Unmatched paths share
// DefaultTier so arbitrary URLs cannot mint new buckets.
func tierKey(config *EndpointConfig) string {
	if config == nil {
		return DefaultTier
	}
	return config.Method + " " + config.Path
}
