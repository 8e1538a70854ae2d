// Package databasetest opens throwaway migrated databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vin0san/mini-twitter/database"
)

// New returns a migrated sqlite database in a temp dir, closed on cleanup.
func New(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "minitwitter-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
