package store

import (
	"context"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
)

// Storages aggregates every repository the application uses. It is the
// single construction point for the persistence layer.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the configured database and wires all
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// DB exposes the underlying connection, e.g. for running migrations.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
