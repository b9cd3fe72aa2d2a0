// Package config manages environment variables.
//
// It reads variables from the process environment (optionally preloaded
// from a `.env` file), maps them into structured Go types, and validates
// that required values are present so the app fails fast on bad config.
//
// Env vars use the CORNERSTORE_ prefix and dot-delimited nesting:
//
//	CORNERSTORE_SERVER.PORT       -> Config.Server.Port
//	CORNERSTORE_DATABASE.HOST     -> Config.Database.Host
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	// Env selects runtime behavior: "local" enables console logs and SQL
	// tracing, anything else logs JSON.
	Env string `koanf:"env" validate:"required"`

	// LogLevel is a zerolog level name ("debug", "info", ...). Empty means
	// "info".
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// envPrefix is stripped from env var names before koanf key mapping.
const envPrefix = "CORNERSTORE_"

// New loads configuration from environment variables, unmarshals it into
// Config, and validates it.
func New() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// The `validate:"required"` tags enforce that every block is present
	// and populated; a missing value fails startup here instead of at the
	// first request.
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
