// Package mcpserver exposes the catalog, the duration rule and the trip
// wizard as MCP tools so agents can plan trips without the TUI.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/tripwise/internal/catalog"
	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/trip"
)

// Server holds the MCP tool surface. Tools are registered by New; the
// transport is picked by calling ServeStdio or Start.
type Server struct {
	catalog       catalog.Catalog
	defaultCity   trip.City
	onTripCreated func(trip.Trip)
	version       string

	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
	mu        sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithOnTripCreated is called for every trip plan-trip creates.
func WithOnTripCreated(fn func(trip.Trip)) Option {
	return func(s *Server) {
		s.onTripCreated = fn
	}
}

// WithDefaultCity sets the city plan-trip uses when none is given.
func WithDefaultCity(city trip.City) Option {
	return func(s *Server) {
		s.defaultCity = city
	}
}

// WithVersion sets the version reported to clients.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// New creates a server for the given catalog and registers its tools.
func New(c catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog:     c,
		defaultCity: trip.DefaultCity,
		version:     "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(
		"tripwise",
		s.version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// ServeStdio serves the tools on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logger.Debug("Serving MCP tools on stdio")
	return server.ServeStdio(s.mcpServer)
}

// Start serves the tools over streamable HTTP on addr. An empty addr or
// port 0 picks a free loopback port. Returns the bound port.
func (s *Server) Start(ctx context.Context, addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}
	if addr == "" {
		addr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	))
	s.stdServer = &http.Server{
		Handler:     mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Capture stdServer reference for goroutine to avoid race with Stop()
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	logger.Debug("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop shuts down the HTTP transport. A no-op if Start was never called.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}

	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.stdServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP endpoint once Start has succeeded.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
