package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	driverName  = "sqlite"
	pingTimeout = 5 * time.Second
)

// pragmas run on the single pooled connection.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// schema is applied in order inside one transaction. Every statement must be
// idempotent. Factors are TEXT so they round-trip without float drift.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS scales (
		name    TEXT PRIMARY KEY COLLATE NOCASE,
		factor  TEXT NOT NULL,
		builtin BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS conversions (
		id                 TEXT PRIMARY KEY,
		occurred_at        TIMESTAMP NOT NULL,
		scale              TEXT NOT NULL,
		direction          TEXT NOT NULL,
		output_measurement TEXT NOT NULL,
		input              TEXT NOT NULL,
		output             TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversions_occurred_at ON conversions (occurred_at)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT UNIQUE NOT NULL COLLATE NOCASE,
		password_hash TEXT NOT NULL
	)`,
}

// InitDB opens the database file at path, creating it and its directory when
// needed, and brings the schema up to date.
func InitDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := prepare(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func prepare(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return migrate(db)
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
