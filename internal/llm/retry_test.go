package llm

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", &APIError{StatusCode: 429}, true},
		{"server error", &APIError{StatusCode: 503}, true},
		{"client error", &APIError{StatusCode: 400}, false},
		{"unauthorized", &APIError{StatusCode: 401}, false},
		{"timeout", &TimeoutError{Op: "chat completion", Timeout: time.Second}, false},
		{"transport failure", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("connection refused")}, true},
		{"plain error", errors.New("decode failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransient(tt.err); got != tt.want {
				t.Errorf("isTransient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), RetryConfig{MaxAttempts: 2, Backoff: time.Millisecond}, func() error {
			calls++
			return nil
		})
		if err != nil || calls != 1 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("transient then success", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), RetryConfig{MaxAttempts: 2, Backoff: time.Millisecond}, func() error {
			calls++
			if calls == 1 {
				return &APIError{StatusCode: 500}
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("terminal error stops immediately", func(t *testing.T) {
		calls := 0
		wantErr := &APIError{StatusCode: 400}
		err := withRetry(context.Background(), RetryConfig{MaxAttempts: 3, Backoff: time.Millisecond}, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) || calls != 1 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		_ = withRetry(context.Background(), RetryConfig{}, func() error {
			calls++
			return nil
		})
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("canceled context stops backoff wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := withRetry(ctx, RetryConfig{MaxAttempts: 3, Backoff: time.Minute}, func() error {
			return &APIError{StatusCode: 500}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}
