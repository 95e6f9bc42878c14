package config

import "time"

// BreakerConfig parameterizes the circuit breaker gating upstream calls.
type BreakerConfig struct {
	FailureThreshold int
	RecoveryTimeout  time.Duration
	HalfOpenMaxCalls int
}

func (c BreakerConfig) Validate() error {
	if c.FailureThreshold <= 0 {
		return fieldErr("breaker.failure_threshold", "must be positive")
	}
	if c.HalfOpenMaxCalls <= 0 {
		return fieldErr("breaker.half_open_max_calls", "must be positive")
	}
	return nil
}
