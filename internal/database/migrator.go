package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"cornerstore/internal/config"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// All SQL files under migrations/ are embedded at compile time, so the
// binary carries its own schema and baseline seed and does not depend on
// the filesystem at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate runs database migrations using jackc/tern.
//
// Migration 001 creates the five tables with their cascade foreign keys;
// migration 002 inserts the fixed baseline dataset. tern records the
// applied version in the schema_version table, so provisioning runs the
// seed exactly once and later startups are no-ops.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	// A single direct connection is enough for a one-time action; no need
	// to involve the pool.
	conn, err := pgx.Connect(ctx, DSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
