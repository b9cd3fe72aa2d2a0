// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - database pool
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cornerstore/internal/config"
	"cornerstore/internal/database"

	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it holds the config, the logger, the
// database pool, and an internal *http.Server used to listen and serve
// requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// httpServer is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server; that is done in SetupHTTPServer +
// Start. Pool creation also pings the DB, so a down database fails
// startup here.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server.
//
// The router is passed in as handler; the timeouts protect against slow
// clients and resource exhaustion.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called
// first and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies: it
// stops the HTTP server (finishing inflight requests until the ctx
// deadline) and closes the DB pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
