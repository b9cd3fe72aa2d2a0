// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"cornerstore/internal/handler"
	"cornerstore/internal/middleware"
	"cornerstore/internal/server"

	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global middleware first, then the
// resource routes.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: request ids before the context enhancer so the
	// request-scoped logger can pick them up, logging before recovery
	// so panics still produce a log line.
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())

	registerSystemRoutes(e, h)
	registerCashierRoutes(e, h)
	registerProductRoutes(e, h)
	registerOrderRoutes(e, h)

	return e
}

func registerCashierRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/cashiers/:id", handler.Handle(h.Cashiers.Handler, h.Cashiers.Get, http.StatusOK))
	e.POST("/cashiers", handler.Handle(h.Cashiers.Handler, h.Cashiers.Create, http.StatusCreated))
}

func registerProductRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/products", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK))
	e.POST("/products", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated))
	e.PUT("/products/:id", handler.HandleNoContent(h.Products.Handler, h.Products.Update, http.StatusNoContent))
}

func registerOrderRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/orders", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK))
	e.GET("/orders/:id", handler.Handle(h.Orders.Handler, h.Orders.Get, http.StatusOK))
	e.POST("/orders", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	e.DELETE("/orders/:id", handler.HandleNoContent(h.Orders.Handler, h.Orders.Delete, http.StatusNoContent))
}
