// Package database provides database connection management.
package database

import (
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/satzlabs/satz/internal/config"
	"github.com/satzlabs/satz/schemas"
)

// Open opens the SQLite database at cfg.Path and applies the embedded
// schema migrations.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	// sqlx does not know the modernc driver name out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.Path == ":memory:" {
		// Each connection gets its own in-memory database; keep exactly one.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping() > %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies every embedded migration. fs.ReadDir returns entries
// sorted by filename, which is the application order.
func Migrate(db *sqlx.DB) error {
	entries, err := fs.ReadDir(schemas.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.ReadDir(migrations) > %w", err)
	}

	for _, entry := range entries {
		statements, err := fs.ReadFile(schemas.Migrations, "migrations/"+entry.Name())
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", entry.Name(), err)
		}
		if _, err := db.Exec(string(statements)); err != nil {
			return fmt.Errorf("db.Exec(%s) > %w", entry.Name(), err)
		}
	}
	return nil
}
