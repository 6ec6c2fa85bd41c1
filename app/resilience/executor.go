// ABOUTME: This file combines circuit breaker and retry into one call wrapper
// ABOUTME: Every outbound backend call goes through Executor.Do
package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Executor protects an outbound dependency with a shared circuit breaker
// and per-call bounded retries. It has no knowledge of what the calls do.
//
// Each attempt passes through the breaker, so a failure streak inside one
// retry loop can open the circuit for every concurrent caller. Circuit-open
// failures are never retried and are not recorded as breaker failures.
type Executor struct {
	breaker     *CircuitBreaker
	retryConfig RetryConfig
	isRetryable ErrorClassifier
	callTimeout time.Duration
	logger      *slog.Logger
}

// NewExecutor creates an executor around a shared breaker. classifier may be
// nil, in which case every non-circuit-open error is retried.
func NewExecutor(
	breaker *CircuitBreaker,
	retryConfig RetryConfig,
	classifier ErrorClassifier,
	callTimeout time.Duration,
	logger *slog.Logger,
) *Executor {
	if classifier == nil {
		classifier = func(err error) bool { return true }
	}
	return &Executor{
		breaker:     breaker,
		retryConfig: retryConfig,
		isRetryable: classifier,
		callTimeout: callTimeout,
		logger:      logger.With("component", "resilience_executor"),
	}
}

// Do runs fn under breaker and retry protection. operation names the call
// for logging only. Each attempt gets its own deadline; exceeding it counts
// as a failure like any network error.
func (e *Executor) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	retrier := NewRetrier(e.retryConfig, e.retryable, e.logger.With("operation", operation))

	err := retrier.Do(ctx, func() error {
		return e.breaker.Call(func() error {
			attemptCtx := ctx
			if e.callTimeout > 0 {
				var cancel context.CancelFunc
				attemptCtx, cancel = context.WithTimeout(ctx, e.callTimeout)
				defer cancel()
			}
			return fn(attemptCtx)
		})
	})

	if err != nil {
		e.logger.Warn("protected call failed",
			"operation", operation,
			"breaker_state", e.breaker.State().String(),
			"error", err)
	}

	return err
}

// BreakerState exposes the current breaker state for diagnostics.
func (e *Executor) BreakerState() State {
	return e.breaker.State()
}

func (e *Executor) retryable(err error) bool {
	if errors.Is(err, ErrCircuitOpen) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return e.isRetryable(err)
}
