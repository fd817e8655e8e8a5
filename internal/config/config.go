// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the service configuration. It is loaded from a YAML file (JSON files are
// accepted too, being valid YAML) and then overridden from the environment.
type Config struct {
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url"` // PostgreSQL connection URL; empty disables score history
	} `yaml:"database"`

	Redis struct {
		URL string        `yaml:"url"` // empty disables the score cache
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // json or text
	} `yaml:"logging"`

	Scoring struct {
		VerbStrategy string `yaml:"verb_strategy"` // hash or random
	} `yaml:"scoring"`

	Batch struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"batch"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Server.Port = 8080
	c.Server.ReadTimeout = 30 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = 60 * time.Second
	c.Server.ShutdownTimeout = 30 * time.Second
	c.Redis.TTL = 24 * time.Hour
	c.Logging.Level = "info"
	c.Logging.Format = "json"
	c.Scoring.VerbStrategy = "hash"
	c.Batch.Concurrency = 4
	return c
}

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} references with their environment values. Unset
// variables are left as written.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// LoadConfig loads configuration from path (optional), fills unset values from
// Default, applies environment overrides and validates the result. A .env file in the
// working directory is loaded first if present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return nil, err
		}
		cfg = *fileCfg
	}

	cfg = cfg.MergeWithDefaults(Default())
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// loadFromEnv overrides values from environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
	if v := os.Getenv("ATS_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ATS_CACHE_TTL: %v", err)
		}
		c.Redis.TTL = ttl
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("ATS_VERB_STRATEGY"); v != "" {
		c.Scoring.VerbStrategy = v
	}
	if v := os.Getenv("ATS_BATCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ATS_BATCH_CONCURRENCY: %v", err)
		}
		c.Batch.Concurrency = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 0 and 65535")
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("config error: 'redis.ttl' must be non-negative")
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("config error: 'batch.concurrency' must be non-negative")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("config error: 'logging.format' must be json or text, got %q", c.Logging.Format)
	}

	switch strings.ToLower(c.Scoring.VerbStrategy) {
	case "", "hash", "deterministic", "random":
	default:
		return fmt.Errorf("config error: 'scoring.verb_strategy' must be hash or random, got %q", c.Scoring.VerbStrategy)
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.IdleTimeout == 0 {
		result.Server.IdleTimeout = defaults.Server.IdleTimeout
	}
	if result.Server.ShutdownTimeout == 0 {
		result.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if result.Database.URL == "" {
		result.Database.URL = defaults.Database.URL
	}
	if result.Redis.URL == "" {
		result.Redis.URL = defaults.Redis.URL
	}
	if result.Redis.TTL == 0 {
		result.Redis.TTL = defaults.Redis.TTL
	}
	if result.Logging.Level == "" {
		result.Logging.Level = defaults.Logging.Level
	}
	if result.Logging.Format == "" {
		result.Logging.Format = defaults.Logging.Format
	}
	if result.Scoring.VerbStrategy == "" {
		result.Scoring.VerbStrategy = defaults.Scoring.VerbStrategy
	}
	if result.Batch.Concurrency == 0 {
		result.Batch.Concurrency = defaults.Batch.Concurrency
	}

	return result
}
