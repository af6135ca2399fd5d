package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mindcraft-client/internal/config"
	"github.com/MKhiriev/mindcraft-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed key/value store that holds the
	// bearer credential between runs.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
