// Package testutil gives service and command tests a fresh learnpath store.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/learnpath/internal/db"
)

// NewTestDB opens an empty in-memory learnpath store: no user, no plans, no
// quiz attempts. It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps database so a service under test commits its writes the
// way the CLI does.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
