package server

import (
	"context"
	"net/http"
)

// Server defines the interface for the consultation HTTP API
type Server interface {
	// Start binds the listen address and serves in the background.
	Start(ctx context.Context) error
	// Stop gracefully shuts the server down.
	Stop(ctx context.Context) error
	// Handler exposes the route tree, mainly for tests.
	Handler() http.Handler
}
