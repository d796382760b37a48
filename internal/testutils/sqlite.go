package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charforge/internal/sqlite"
)

// CreateTestSQLiteDB opens a migrated database in the test's temp dir
func CreateTestSQLiteDB(t *testing.T) *sql.DB {
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "charforge.db"))
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(func() { _ = db.Close() })
	return db
}
