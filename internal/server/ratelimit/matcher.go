package ratelimit

import (
	"slices"
	"strings"
)

// MatchEndpoint finds the configuration for a request. Exact paths win over prefixes,
// and among prefixes the longest wins. Returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method && c.Method != "*" {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}

// isExempt reports whether path is never rate limited.
func isExempt(path string, exempt []string) bool {
	return slices.Contains(exempt, path)
}
