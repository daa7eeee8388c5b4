package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_SQLite applies all migrations against a throwaway SQLite file
// and verifies that the entries table exists afterwards.
func TestMigrate_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate_test.db")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))

	var name string
	err = db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'entries'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "entries", name)

	// Migrate must be idempotent: a second run applies nothing.
	assert.NoError(t, Migrate(db, "sqlite3"))
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, Migrate(db, "no-such-dialect"))
}
