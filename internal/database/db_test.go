package database

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satzlabs/satz/internal/config"
)

func tableNames(t *testing.T, db *sqlx.DB) []string {
	t.Helper()
	var names []string
	require.NoError(t, db.Select(&names,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"))
	return names
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "satz.sqlite3")

	db, err := Open(config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, []string{"bundle_elements", "bundles", "sentences"}, tableNames(t, db))

	var foreignKeys int
	require.NoError(t, db.Get(&foreignKeys, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, foreignKeys)
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "satz.sqlite3")

	db, err := Open(config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO bundles (id, created_at) VALUES ('2026-09-01-aaaaa', '2026-09-01 00:00:00')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM bundles"))
	assert.Equal(t, 1, count)
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	// One shared connection, otherwise every pool connection would see
	// its own empty database.
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	assert.Equal(t, []string{"bundle_elements", "bundles", "sentences"}, tableNames(t, db))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, Migrate(db))
}
