package store

import (
	"database/sql"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver-specific
// error classifier and the dialect name goose needs for migrations.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Migrate applies all pending goose migrations for the entries table.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
