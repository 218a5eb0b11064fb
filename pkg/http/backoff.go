package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// BackoffConfig is an exponential retry policy for idempotent requests.
type BackoffConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// RetryStatuses overrides the default retryable statuses (502, 503, 504, 429).
	RetryStatuses []int
}

// NewBackoffConfig returns a policy with the given retries and delays.
func NewBackoffConfig(maxRetries int, initialDelay, maxDelay time.Duration) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   maxRetries,
		InitialDelay: initialDelay,
		MaxDelay:     maxDelay,
	}
}

func (b *BackoffConfig) delay(attempt int) time.Duration {
	d := b.InitialDelay
	for i := 0; i < attempt; i++ {
		d *= 2
		if b.MaxDelay > 0 && d >= b.MaxDelay {
			return b.MaxDelay
		}
	}
	return d
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if status == 0 {
		return true
	}

	retryable := b.RetryStatuses
	if len(retryable) == 0 {
		retryable = []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests}
	}
	for _, s := range retryable {
		if s == status {
			return true
		}
	}
	return false
}
