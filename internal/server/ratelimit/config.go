package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route. Paths ending in "/" match by prefix;
// Method "*" matches any method.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // bucket capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets idle longer than this are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	ExemptPaths     []string
	EndpointConfigs []EndpointConfig
}

// DefaultConfig is the configuration used when no environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		ExemptPaths:     []string{"/health"},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// LoadConfig builds the configuration from RATE_LIMIT_* environment variables on top of
// DefaultConfig. Unparseable values fall back to the default.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envValue("RATE_LIMIT_ENABLED", cfg.Enabled, strconv.ParseBool)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = envValue("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit, strconv.Atoi)
	cfg.DefaultWindow = envValue("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow, time.ParseDuration)
	cfg.CleanupInterval = envValue("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval, time.ParseDuration)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))

	scoreLimit := envValue("RATE_LIMIT_SCORE_PER_MINUTE", 60, strconv.Atoi)
	for i := range cfg.EndpointConfigs {
		if strings.HasPrefix(cfg.EndpointConfigs[i].Path, "/v1/ats/") {
			cfg.EndpointConfigs[i].Limit = scoreLimit
		}
	}
	return cfg
}

// DefaultEndpointConfigs returns the per-route limits. Scoring routes run the engine on
// every call; history reads hit the database.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/v1/ats/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/ats/autofix", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/ats/analysis", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/resumes/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func envValue[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
