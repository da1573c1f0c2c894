// Package dbtest provides throwaway databases for package tests.
package dbtest

import (
	"testing"

	"charter-ops/hangar/internal/config"
	"charter-ops/hangar/internal/db"
)

// Open opens a migrated in-memory SQLite database closed at test cleanup
func Open(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.Open(config.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}
