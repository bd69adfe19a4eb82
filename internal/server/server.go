// Package server exposes the consultation pipeline over HTTP for clinic
// integrations that post recordings instead of dropping files.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Start binds the listen address and begins serving. It returns once the
// listener is bound so the caller knows the port is ready; serving
// continues in a goroutine.
func (s *implServer) Start(ctx context.Context) error {
	s.logger.Info(ctx, "Starting HTTP server on %s", s.httpServer.Addr)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error(ctx, "Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *implServer) Stop(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// Handler returns the route tree for registration-free testing.
func (s *implServer) Handler() http.Handler {
	return s.engine
}
