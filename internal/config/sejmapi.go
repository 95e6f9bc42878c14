package config

import "time"

// SejmAPIConfig holds the upstream HTTP client settings. BaseURL,
// TimeoutSeconds, MaxConcurrent and CacheMaxEntries are applied by the
// dispatcher. MaxRetries and the CacheTTL* fields are loaded and validated
// but not applied: the client always makes up to 3 attempts and uses its own
// fixed per-category cache TTLs.
type SejmAPIConfig struct {
	BaseURL           string
	TimeoutSeconds    int
	MaxConcurrent     int
	MaxRetries        int
	CacheTTLMetadata  time.Duration
	CacheTTLSearch    time.Duration
	CacheTTLAct       time.Duration
	CacheMaxEntries   int
}

func (c SejmAPIConfig) Validate() error {
	if c.BaseURL == "" {
		return fieldErr("sejmapi.base_url", "must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fieldErr("sejmapi.timeout_seconds", "must be positive")
	}
	if c.MaxConcurrent <= 0 {
		return fieldErr("sejmapi.max_concurrent_requests", "must be positive")
	}
	if c.MaxRetries <= 0 {
		return fieldErr("sejmapi.max_retries", "must be positive")
	}
	return nil
}
