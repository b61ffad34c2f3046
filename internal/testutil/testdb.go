package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/recall/internal/db"
)

// NewTestDB returns an empty in-memory revision store with the current
// revision_items schema, closed at the end of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory revision store: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a store from NewTestDB for services that schedule or
// import batches.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
