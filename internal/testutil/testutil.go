// Package testutil provides shared test helpers for opening throwaway
// databases and writing config fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/satzlabs/satz/internal/config"
	"github.com/satzlabs/satz/internal/database"
	"github.com/satzlabs/satz/internal/review"
)

// OpenTestDB opens a migrated in-memory database that lives until the
// test ends.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// OpenTestStore opens a review store on a fresh in-memory database.
func OpenTestStore(t *testing.T) *review.DBStore {
	t.Helper()
	return review.NewDBStore(OpenTestDB(t))
}

// SetupTestConfig writes a minimal config file pointing every path into
// tmpDir and returns the config file path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  path: %s
review:
  new_sentence_limit: 10
outputs:
  bundle_directory: %s
`,
		filepath.Join(tmpDir, "satz.sqlite3"),
		tmpDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
