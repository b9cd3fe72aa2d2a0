// Package logger configures the application's logging.
//
// It builds the main zerolog logger from config and provides the adapter
// pieces the database package needs to route pgx query tracing through
// zerolog.
package logger

import (
	"os"
	"strings"

	"cornerstore/internal/config"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New constructs the application logger.
//
// In the local env it writes a human-friendly console format; everywhere
// else it writes JSON lines suitable for log shipping. The level comes
// from config and defaults to info.
func New(cfg *config.Config) *zerolog.Logger {
	level := ParseLevel(cfg.Primary.LogLevel)

	var logger zerolog.Logger
	if cfg.Primary.Env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			Level(level).
			With().Timestamp().Str("service", "cornerstore").Logger()
	}

	return &logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewPgxLogger creates the logger pgx tracelog output is adapted onto.
//
// SQL logging is noisy, so the pgx logger gets its own instance tagged
// with a component field instead of sharing the app logger.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").Logger()
}

// PgxTraceLogLevel maps the app's zerolog level to a pgx tracelog level
// so SQL tracing verbosity follows the configured log level.
func PgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
