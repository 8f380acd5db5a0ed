package db

import (
	"path/filepath"
	"testing"

	"quicknotes/config"
)

func TestOpen(t *testing.T) {
	t.Run("Sqlite schema is created", func(t *testing.T) {
		cfg := &config.Config{
			DBDriver: "sqlite",
			DSN:      filepath.Join(t.TempDir(), "test.db"),
		}
		conn, err := Open(cfg)
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		defer conn.Close()

		// Both tables accept inserts after migration.
		if _, err := conn.Exec(
			"INSERT INTO user (username, email, password_hash) VALUES (?, ?, ?)",
			"alice", "alice@example.com", "hash",
		); err != nil {
			t.Errorf("Insert into user failed: %v", err)
		}
		if _, err := conn.Exec(
			"INSERT INTO notes (user_id, content) VALUES (?, ?)", 1, "hello",
		); err != nil {
			t.Errorf("Insert into notes failed: %v", err)
		}
	})

	t.Run("Migration is idempotent", func(t *testing.T) {
		cfg := &config.Config{
			DBDriver: "sqlite",
			DSN:      filepath.Join(t.TempDir(), "test.db"),
		}
		first, err := Open(cfg)
		if err != nil {
			t.Fatalf("First open returned error: %v", err)
		}
		first.Close()

		second, err := Open(cfg)
		if err != nil {
			t.Fatalf("Second open returned error: %v", err)
		}
		second.Close()
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "oracle", DSN: "whatever"}
		if _, err := Open(cfg); err == nil {
			t.Error("Expected error for unsupported driver")
		}
	})
}
