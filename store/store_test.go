package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"quicknotes/config"
	"quicknotes/db"
)

// newTestDB opens a throwaway sqlite database with the real schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DSN:      filepath.Join(t.TempDir(), "test.db"),
	}
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// mustCreateUser inserts a user directly and returns its id.
func mustCreateUser(t *testing.T, users *UserStore, username, email string) int {
	t.Helper()

	id, err := users.Create(username, email, "not-a-real-hash", false)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return id
}
