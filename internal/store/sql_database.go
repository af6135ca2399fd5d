package store

import (
	"database/sql"

	"github.com/MKhiriev/mindcraft-client/internal/logger"
	"github.com/MKhiriev/mindcraft-client/migrations"
)

// DB wraps the client's SQLite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
