// ABOUTME: This file implements exponential backoff retry mechanism with jitter
// ABOUTME: Provides resilient error handling for backend service calls
package resilience

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// RetryConfig holds the retry policy knobs.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// DefaultRetryConfig returns the standard policy: at most 3 attempts with
// exponential backoff starting at 500ms.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.2,
	}
}

// ErrorClassifier reports whether an error is worth retrying.
type ErrorClassifier func(error) bool

// Retrier retries an operation with bounded exponential backoff.
type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

// NewRetrier creates a retrier with the given policy and classifier.
func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs operation until it succeeds, retries are exhausted, or a
// non-retryable error occurs. Waits between attempts are cancellable
// through ctx.
func (r *Retrier) Do(ctx context.Context, operation func() error) error {
	var lastErr error
	var totalWaitTime time.Duration
	var attempt int

	for attempt = 1; attempt <= r.config.MaxAttempts; attempt++ {
		attemptStart := time.Now()
		lastErr = operation()
		attemptDuration := time.Since(attemptStart)

		if lastErr == nil {
			if attempt > 1 {
				r.logger.Info("operation succeeded after retry",
					"attempt", attempt,
					"attempt_duration_ms", attemptDuration.Milliseconds(),
					"total_wait_time_ms", totalWaitTime.Milliseconds())
			}
			return nil
		}

		isRetryable := r.isRetryable != nil && r.isRetryable(lastErr)
		r.logger.Warn("operation attempt failed",
			"attempt", attempt,
			"error", lastErr,
			"retryable", isRetryable,
			"attempt_duration_ms", attemptDuration.Milliseconds())

		// 最後の試行の場合、または、リトライ不可能なエラーの場合
		if attempt == r.config.MaxAttempts || !isRetryable {
			break
		}

		delay := r.calculateDelay(attempt)
		totalWaitTime += delay

		// コンテキストでキャンセル可能な待機
		select {
		case <-ctx.Done():
			r.logger.Error("retry cancelled by context",
				"attempt", attempt,
				"context_error", ctx.Err())
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts (wait: %dms): %w",
		attempt, totalWaitTime.Milliseconds(), lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	// 指数バックオフ
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// ジッター追加（サンダリングハード防止）
	jitter := 1.0 + (rand.Float64()-0.5)*r.config.JitterFactor
	delay *= jitter

	return time.Duration(delay)
}
