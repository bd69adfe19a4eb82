package executor

import (
	"context"
	"io"
)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput runs a command with stdin connected to the given
	// reader, for tools driven by console commands while they run.
	ExecuteWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error)
}
