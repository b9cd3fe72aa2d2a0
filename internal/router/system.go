package router

import (
	"cornerstore/internal/handler"

	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
