// ABOUTME: This file implements circuit breaker pattern for backend API protection
// ABOUTME: Prevents cascade failures by temporarily blocking calls to a failing backend
package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned when the circuit is open and the call was not
// attempted at all.
var ErrCircuitOpen = errors.New("circuit breaker open")

// State represents the current state of the circuit breaker
type State int

const (
	// StateClosed means the circuit is closed and requests are allowed
	StateClosed State = iota
	// StateOpen means the circuit is open and requests are blocked
	StateOpen
	// StateHalfOpen means the circuit is testing if the backend has recovered
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// BreakerConfig holds circuit breaker thresholds.
type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	ResetTimeout     time.Duration
}

// DefaultBreakerConfig returns the standard policy: open after 3 consecutive
// failures, probe again after 30s, close after 2 successful trials.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		ResetTimeout:     30 * time.Second,
	}
}

// Metrics holds cumulative counters for the circuit breaker
type Metrics struct {
	TotalCalls     int64
	TotalFailures  int64
	TotalSuccesses int64
	State          State
	LastFailure    time.Time
}

// CircuitBreaker implements the circuit breaker pattern. One instance is
// shared process-wide per downstream dependency; all mutation goes through
// the mutex. State is never persisted, it is a liveness optimization only.
type CircuitBreaker struct {
	config         BreakerConfig
	failures       int
	successes      int
	lastFailure    time.Time
	state          State
	totalCalls     int64
	totalFailures  int64
	totalSuccesses int64
	mu             sync.RWMutex
}

// NewCircuitBreaker creates a new circuit breaker with the given policy.
func NewCircuitBreaker(config BreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Call executes fn with circuit breaker protection. When the circuit is
// open and the reset timeout has not elapsed, fn is not attempted and
// ErrCircuitOpen is returned.
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	cb.totalCalls++

	// Check if circuit should move to half-open
	if cb.state == StateOpen && time.Since(cb.lastFailure) >= cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.successes = 0
	}

	// Block requests if circuit is open
	if cb.state == StateOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}

	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.totalFailures++
		cb.lastFailure = time.Now()

		// A single failed trial reopens the circuit
		if cb.state == StateHalfOpen {
			cb.state = StateOpen
			return err
		}

		if cb.failures >= cb.config.FailureThreshold {
			cb.state = StateOpen
		}

		return err
	}

	cb.totalSuccesses++
	switch cb.state {
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.failures = 0
			cb.successes = 0
		}
	case StateClosed:
		cb.failures = 0
	}

	return nil
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Failures returns the current consecutive failure count
func (cb *CircuitBreaker) Failures() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// Metrics returns comprehensive metrics for the circuit breaker
func (cb *CircuitBreaker) Metrics() Metrics {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Metrics{
		TotalCalls:     cb.totalCalls,
		TotalFailures:  cb.totalFailures,
		TotalSuccesses: cb.totalSuccesses,
		State:          cb.state,
		LastFailure:    cb.lastFailure,
	}
}

// Reset resets the circuit breaker to closed state with zero failures
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.successes = 0
	cb.state = StateClosed
	cb.lastFailure = time.Time{}
}
