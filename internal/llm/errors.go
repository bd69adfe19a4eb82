package llm

import (
	"fmt"
	"time"
)

// TimeoutError reports a collaborator call that exceeded the configured
// deadline. It is terminal; timeouts are not retried.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s exceeded %s deadline", e.Op, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// APIError is a non-2xx collaborator response. Status 429 and 5xx count as
// transient and are eligible for the bounded retry.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}
