package auth

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"quicknotes/config"
	"quicknotes/db"
	"quicknotes/store"
)

const testSecret = "test-secret"

func newTestStore(t *testing.T) (*sql.DB, *store.UserStore) {
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
	return conn, store.NewUserStore(conn)
}

func newTestService(t *testing.T) (*Service, *TokenService, *sql.DB) {
	t.Helper()

	conn, users := newTestStore(t)
	tokens, err := NewTokenService(testSecret, time.Hour, users)
	if err != nil {
		t.Fatalf("Failed to create token service: %v", err)
	}
	return NewService(users, tokens, 10, true), tokens, conn
}
