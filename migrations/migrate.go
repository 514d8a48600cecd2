// Package migrations applies embedded goose migrations for the user
// database. Postgres and SQLite keep separate migration sets because their
// auto-increment DDL differs; both create the same logical schema, including
// the UNIQUE constraint on users.email that backs duplicate-registration
// detection.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given driver
// (config.DriverPostgres or config.DriverSQLite).
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dir string
	switch driver {
	case config.DriverPostgres:
		dir = "postgres"
	case config.DriverSQLite:
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: %w: %q", config.ErrUnknownDBDriver, driver)
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
