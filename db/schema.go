// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/chainpoll/cliparse"
)

// Open connects to the configured database (sqlite or postgres) and
// verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are written from Go so the same DDL works on both drivers.
const schema = `
-- Stored survey definitions, keyed by content hash
CREATE TABLE IF NOT EXISTS survey (
    hash TEXT PRIMARY KEY,
    definition TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Accepted responses
CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY,
    survey_hash TEXT NOT NULL REFERENCES survey(hash) ON DELETE CASCADE,
    payload TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    ip_hash TEXT
);

CREATE INDEX IF NOT EXISTS idx_response_survey_hash ON response(survey_hash);
`
