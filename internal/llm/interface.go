// Package llm holds the chat and speech collaborator clients shared by the
// pipeline stages.
package llm

import "context"

// CompletionRequest is a single-turn chat completion call. Sampling fields
// are fixed per stage, not user input.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Completer produces one completion for one request. Implementations apply
// the configured per-call deadline and the bounded retry themselves.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
