package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
)

// DB wraps the standard library connection pool with the application logger.
// All repositories in this package operate through it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDBDriver, cfg.Driver)
	}
}
