// Package config loads gateway configuration from the process environment
// under the SEJMKIT_ prefix, with typed defaults for every key (any .env
// bootstrap is done by the caller first) — see FILES below for the
// per-concern layout.
//
// FILES:
//   - config.go:   root Config struct, Load(), Validate()
//   - server.go:   transport/host/port/name/version
//   - sejmapi.go:  upstream client timeouts/concurrency/retries/cache TTLs
//   - store.go:    Document Store and Result Set Store bounds
//   - breaker.go:  circuit breaker parameters
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const envPrefix = "SEJMKIT_"

// LoggingConfig controls the structured logger. Format is "text" (pretty
// console output) or "json" (structured), matching SEJMKIT_LOG_FORMAT.
type LoggingConfig struct {
	Level  string
	Format string
}

// Config is the root configuration for the gateway process. Every field has
// a default; nothing is required to be set.
type Config struct {
	Server      ServerConfig
	SejmAPI     SejmAPIConfig
	DocStore    DocStoreConfig
	ResultStore ResultStoreConfig
	Breaker     BreakerConfig
	Logging     LoggingConfig
}

// Load reads configuration from the process environment (after an optional
// .env bootstrap, performed by the caller) and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Transport: getEnv("TRANSPORT", "stdio"),
			Host:      getEnv("HOST", "127.0.0.1"),
			Port:      getEnvInt("PORT", 8765),
			Name:      getEnv("SERVER_NAME", "sejmkit-gateway"),
			Version:   getEnv("SERVER_VERSION", "1.0.0"),
		},
		SejmAPI: SejmAPIConfig{
			BaseURL:          getEnv("API_BASE_URL", "https://api.sejm.gov.pl/eli"),
			TimeoutSeconds:   getEnvInt("API_TIMEOUT_SECONDS", 30),
			MaxConcurrent:    getEnvInt("MAX_CONCURRENT_REQUESTS", 10),
			MaxRetries:       getEnvInt("MAX_RETRIES", 3),
			CacheTTLMetadata: getEnvDuration("CACHE_TTL_METADATA", 1*time.Hour),
			CacheTTLSearch:   getEnvDuration("CACHE_TTL_SEARCH", 5*time.Minute),
			CacheTTLAct:      getEnvDuration("CACHE_TTL_ACT", 15*time.Minute),
			CacheMaxEntries:  getEnvInt("CACHE_MAX_ENTRIES", 1000),
		},
		DocStore: DocStoreConfig{
			MaxDocuments: getEnvInt("DOC_STORE_MAX_DOCUMENTS", 10),
			MaxSizeBytes: getEnvInt("DOC_STORE_MAX_SIZE_BYTES", 5*1024*1024),
			TTL:          getEnvDuration("DOC_STORE_TTL_SECONDS", 2*time.Hour),
		},
		ResultStore: ResultStoreConfig{
			MaxEntries: getEnvInt("RESULT_STORE_MAX_ENTRIES", 20),
			TTL:        getEnvDuration("RESULT_STORE_TTL_SECONDS", 1*time.Hour),
		},
		Breaker: BreakerConfig{
			FailureThreshold: getEnvInt("BREAKER_FAILURE_THRESHOLD", 5),
			RecoveryTimeout:  getEnvDuration("BREAKER_RECOVERY_TIMEOUT_SECONDS", 60*time.Second),
			HalfOpenMaxCalls: getEnvInt("BREAKER_HALF_OPEN_MAX_CALLS", 3),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.SejmAPI.Validate(); err != nil {
		return err
	}
	if err := c.DocStore.Validate(); err != nil {
		return err
	}
	if err := c.ResultStore.Validate(); err != nil {
		return err
	}
	if err := c.Breaker.Validate(); err != nil {
		return err
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fieldErr("logging.format", "must be \"text\" or \"json\"")
	}
	return nil
}

// DumpYAML renders the effective configuration as YAML, for operators
// inspecting defaults. It is documentation only; the environment remains
// the sole authoritative source read by Load.
func (c *Config) DumpYAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func fieldErr(field, reason string) error {
	return fmt.Errorf("%s: %s", field, reason)
}

func getEnv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return def
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return time.Duration(secs) * time.Second
}
