package llm

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// RetryConfig bounds repeat attempts for transient collaborator failures.
// MaxAttempts counts the first try, so 2 means a single retry.
type RetryConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

func (c RetryConfig) attempts() int {
	if c.MaxAttempts < 1 {
		return 1
	}
	return c.MaxAttempts
}

// withRetry runs fn until it succeeds, fails terminally, or the attempt
// budget is spent.
func withRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	attempts := cfg.attempts()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) || attempt == attempts {
			return lastErr
		}
		select {
		case <-time.After(cfg.Backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

// isTransient reports whether err is worth one more attempt: rate limits,
// server-side failures and transport errors qualify; deadline expiry and
// client-side rejections do not.
func isTransient(err error) bool {
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
