package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate limit tier for a path and method. Exact
// path matches win; a configured path ending in "/" acts as a prefix, so a
// "DELETE /jobs/" entry covers "DELETE /jobs/{id}". A nil return means no
// tier applies and the caller falls back to the global default.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never metered; load balancers poll them constantly.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
