// ABOUTME: This file tests the combined breaker+retry call wrapper
// ABOUTME: Covers circuit-open short-circuits and per-attempt timeouts
package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(breaker *CircuitBreaker, classifier ErrorClassifier) *Executor {
	return NewExecutor(breaker, fastRetryConfig(), classifier, 0, testLogger())
}

func TestExecutor_Success(t *testing.T) {
	breaker := testBreaker(time.Minute)
	exec := newTestExecutor(breaker, alwaysRetry)

	calls := 0
	err := exec.Do(context.Background(), "submit_business_info", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateClosed, exec.BreakerState())
}

func TestExecutor_RetriesTransientFailures(t *testing.T) {
	breaker := testBreaker(time.Minute)
	exec := newTestExecutor(breaker, alwaysRetry)

	calls := 0
	err := exec.Do(context.Background(), "save_subscription", func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	// Closed-state success clears the failure streak.
	assert.Equal(t, 0, breaker.Failures())
}

func TestExecutor_RetryLoopCanOpenTheCircuit(t *testing.T) {
	breaker := NewCircuitBreaker(BreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		ResetTimeout:     time.Minute,
	})
	exec := newTestExecutor(breaker, alwaysRetry)

	calls := 0
	err := exec.Do(context.Background(), "complete_onboarding", func(ctx context.Context) error {
		calls++
		return errTransient
	})

	require.Error(t, err)
	// Attempts 1 and 2 hit the backend and breach the threshold; attempt 3
	// is rejected by the now-open breaker and is not retried further.
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, StateOpen, breaker.State())
}

func TestExecutor_OpenCircuitFailsFastWithoutRetry(t *testing.T) {
	breaker := testBreaker(time.Minute)
	for i := 0; i < 3; i++ {
		_ = breaker.Call(func() error { return errTransient })
	}
	require.Equal(t, StateOpen, breaker.State())
	failuresBefore := breaker.Metrics().TotalFailures

	exec := newTestExecutor(breaker, alwaysRetry)

	calls := 0
	err := exec.Do(context.Background(), "read_status", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 0, calls)
	// Rejections are not failures: they must not push the reset window out.
	assert.Equal(t, failuresBefore, breaker.Metrics().TotalFailures)
}

func TestExecutor_NonRetryableClassification(t *testing.T) {
	errRejected := errors.New("backend rejected payload")
	breaker := testBreaker(time.Minute)
	exec := newTestExecutor(breaker, func(err error) bool {
		return !errors.Is(err, errRejected)
	})

	calls := 0
	err := exec.Do(context.Background(), "submit_business_info", func(ctx context.Context) error {
		calls++
		return errRejected
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, 1, calls)
	// The rejection still counts toward the breaker's failure streak.
	assert.Equal(t, 1, breaker.Failures())
}

func TestExecutor_PerAttemptTimeout(t *testing.T) {
	breaker := testBreaker(time.Minute)
	exec := NewExecutor(breaker, RetryConfig{
		MaxAttempts:   2,
		BaseDelay:     time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
		BackoffFactor: 2.0,
		JitterFactor:  0,
	}, alwaysRetry, 10*time.Millisecond, testLogger())

	calls := 0
	err := exec.Do(context.Background(), "slow_call", func(ctx context.Context) error {
		calls++
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// Deadline failures are ordinary failures: retried and counted.
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, breaker.Failures())
}

func TestExecutor_CallerCancellationNotRetried(t *testing.T) {
	breaker := testBreaker(time.Minute)
	exec := newTestExecutor(breaker, alwaysRetry)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := exec.Do(ctx, "cancelled_call", func(ctx context.Context) error {
		calls++
		cancel()
		return context.Canceled
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
