package api

import (
	"context"
	"time"
)

// Strategy selects how the delay between retry attempts grows.
type Strategy int

const (
	// StrategyNone disables retries; the first failure is terminal.
	StrategyNone Strategy = iota
	// StrategyConstant waits the base delay before every retry.
	StrategyConstant
	// StrategyLinear waits base*(attempt+1) before the next retry.
	StrategyLinear
	// StrategyExponential waits base*2^attempt before the next retry.
	StrategyExponential
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// Strategy determines how the delay grows across attempts.
	Strategy Strategy
	// MaxRetries is the maximum number of retries after the initial attempt.
	MaxRetries int
	// BaseDelay is the base delay fed into the strategy.
	BaseDelay time.Duration
	// RetryableOn reports whether a status code should trigger a retry.
	RetryableOn func(statusCode int) bool
}

// DefaultRetryableOn is the default transient-status classifier. Client
// errors are terminal: a bad key or malformed query will not heal on a
// re-issue, and the upstream reports rate limiting as 429.
func DefaultRetryableOn(statusCode int) bool {
	switch statusCode {
	case 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// ShouldRetry reports whether another attempt may follow the given
// zero-indexed attempt.
func (r *RetryConfig) ShouldRetry(attempt int) bool {
	if r.Strategy == StrategyNone {
		return false
	}
	return attempt < r.MaxRetries
}

// Delay computes the wait before the retry that follows the given
// zero-indexed attempt.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	switch r.Strategy {
	case StrategyConstant:
		return r.BaseDelay
	case StrategyLinear:
		return r.BaseDelay * time.Duration(attempt+1)
	case StrategyExponential:
		return r.BaseDelay * time.Duration(1<<uint(attempt))
	default:
		return 0
	}
}

// Wait sleeps for the computed delay or until the context is cancelled.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	delay := r.Delay(attempt)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
