package middleware

import (
	"context"

	"cornerstore/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer enriches every request with a request-scoped logger
// carrying correlation fields (request_id, method, path, ip). The logger
// is stored in both the echo context and the Go request context so
// non-echo code can pull it from a plain context.Context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the echo middleware.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Empty if the RequestID middleware did not run first.
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template (e.g. "/orders/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the echo context.
//
// If EnhanceContext did not run, it returns a no-op logger rather than
// nil so callers never have to guard.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
