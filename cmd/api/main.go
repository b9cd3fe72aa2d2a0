package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cornerstore/internal/config"
	"cornerstore/internal/database"
	"cornerstore/internal/handler"
	"cornerstore/internal/logger"
	"cornerstore/internal/middleware"
	"cornerstore/internal/repository"
	"cornerstore/internal/router"
	"cornerstore/internal/server"
	"cornerstore/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(cfg)

	// Prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, appLogger, cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		appLogger.Fatal().Err(err).Msg("server error")
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}

	appLogger.Info().Msg("server stopped")
}
