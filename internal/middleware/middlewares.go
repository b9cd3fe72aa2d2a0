package middleware

import (
	"cornerstore/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server.
//
// Build once, reuse everywhere: shared dependencies (*server.Server) are
// wired in here instead of scattered through routing setup.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
