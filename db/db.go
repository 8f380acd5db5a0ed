package db

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/go-sql-driver/mysql"

	"quicknotes/config"
)

// schemas holds per-dialect DDL. The UNIQUE constraints on email and
// username are load-bearing: concurrent signups can both pass the
// application-level existence check, so the storage engine has to be
// the one that rejects the duplicate.
var schemas = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS user (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			isAdmin BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES user(id) ON DELETE CASCADE
		);`,
	},
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS user (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			isAdmin BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES user(id) ON DELETE CASCADE
		);`,
	},
}

// Open connects to the configured database and ensures the schema
// exists. DB_DRIVER selects mysql (production) or sqlite (local runs
// and tests); both accept ? placeholders so the stores are shared.
func Open(cfg *config.Config) (*sql.DB, error) {
	ddl, ok := schemas[cfg.DBDriver]
	if !ok {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	conn, err := sql.Open(cfg.DBDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, q := range ddl {
		if _, err := conn.Exec(q); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return conn, nil
}
