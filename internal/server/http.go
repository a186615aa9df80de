package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"spendtrack/internal/model"
)

// HTTPServer serves the REST API over a listener supplied by a
// SecurityLayer.
type HTTPServer struct {
	srv  *http.Server
	addr string
}

// NewHTTPServer creates a new HTTPServer for the given handler and
// address.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		addr: addr,
	}
}

// Start opens a listener through the security layer and serves until
// Stop is called.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight
// requests up to the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Address returns the address the server listens on.
func (s *HTTPServer) Address() string {
	return s.addr
}
