package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"webapps/internal/database"
)

// newTestDB opens a fresh single-file store in a per-test temp dir and
// applies the given schema, so every test starts from an empty table.
func newTestDB(t *testing.T, ddl string) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureSchema(db, ddl))
	return db
}
