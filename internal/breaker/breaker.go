// Package breaker implements a three-state circuit breaker gating calls to
// the upstream legal-act API.
package breaker

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State is one of the three circuit breaker states.
type State string

const (
	Closed   State = "closed"
	Open     State = "open"
	HalfOpen State = "half_open"
)

const (
	DefaultFailureThreshold  = 5
	DefaultRecoveryTimeout   = 60 * time.Second
	DefaultHalfOpenMaxCalls  = 3
)

// Breaker is a lazily-transitioning circuit breaker. State inspection
// (State, CanExecute) performs the open->half_open transition when the
// recovery timeout has elapsed; RecordSuccess/RecordFailure perform the
// remaining transitions explicitly.
type Breaker struct {
	mu sync.Mutex

	failureThreshold int
	recoveryTimeout  time.Duration
	halfOpenMaxCalls int

	state             State
	failureCount      int
	lastFailureTime   time.Time
	halfOpenSuccesses int
}

// New creates a Breaker with the given parameters. Non-positive values fall
// back to the package defaults.
func New(failureThreshold int, recoveryTimeout time.Duration, halfOpenMaxCalls int) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = DefaultFailureThreshold
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = DefaultRecoveryTimeout
	}
	if halfOpenMaxCalls <= 0 {
		halfOpenMaxCalls = DefaultHalfOpenMaxCalls
	}
	return &Breaker{
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		halfOpenMaxCalls: halfOpenMaxCalls,
		state:            Closed,
	}
}

// State returns the current state, performing the lazy open->half_open
// transition if the recovery timeout has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *Breaker) stateLocked() State {
	if b.state == Open && time.Since(b.lastFailureTime) >= b.recoveryTimeout {
		b.state = HalfOpen
		b.halfOpenSuccesses = 0
		log.Info().Msg("circuit breaker transitioning to half_open")
	}
	return b.state
}

// FailureCount returns the current consecutive-failure count.
func (b *Breaker) FailureCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failureCount
}

// CanExecute reports whether a call is currently permitted.
func (b *Breaker) CanExecute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.stateLocked() {
	case Closed:
		return true
	case HalfOpen:
		return b.halfOpenSuccesses < b.halfOpenMaxCalls
	default:
		return false
	}
}

// RecordSuccess reports a successful upstream call.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case HalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.halfOpenMaxCalls {
			b.state = Closed
			b.failureCount = 0
			log.Info().Msg("circuit breaker closed after successful recovery")
		}
	case Closed:
		b.failureCount = 0
	}
}

// RecordFailure reports a failed upstream call.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.lastFailureTime = time.Now()

	if b.state == HalfOpen {
		b.state = Open
		log.Warn().Msg("circuit breaker re-opened from half_open after failure")
		return
	}
	if b.failureCount >= b.failureThreshold {
		b.state = Open
		log.Warn().Int("failure_count", b.failureCount).Int("threshold", b.failureThreshold).
			Msg("circuit breaker opened")
	}
}

// Reset returns the breaker to the closed state, clearing counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = Closed
	b.failureCount = 0
	b.halfOpenSuccesses = 0
}
