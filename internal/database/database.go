// Package database contains the logic for establishing connections to the
// PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool)
//   - registering the shopspring decimal codec on every connection
//   - wiring query tracing/logging (pgx tracelog) in the local env
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"cornerstore/internal/config"
	loggerPkg "cornerstore/internal/logger"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool and a logger.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// DSN builds the Postgres connection string from config.
//
// The password is URL-escaped so characters like ':' or '@' cannot break
// the URL structure, and host:port joining handles IPv6 correctly.
func DSN(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// New creates the PostgreSQL connection pool.
//
// Behavior:
//   - parse the DSN into a pgxpool config and apply pool tuning
//   - register the decimal codec so numeric columns scan into decimal.Decimal
//   - in local env, attach a tracelog tracer that logs SQL through zerolog
//   - create the pool and ping it so startup fails fast if the DB is down
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	// Scan numeric columns straight into shopspring decimal.Decimal.
	pgxPoolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerPkg.NewPgxLogger(globalLevel)

		pgxPoolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			// pgxzero adapts zerolog to the pgx tracelog.Logger interface.
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerPkg.PgxTraceLogLevel(globalLevel),
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
