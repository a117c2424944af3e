// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to types and index forms shared by SQLite and PostgreSQL,
// so the same schema serves both drivers.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Participants (left side; play "men" in symmetric matching)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    identifier TEXT NOT NULL,
    seq INTEGER NOT NULL,
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_participant_active_identifier
    ON participant(identifier) WHERE NOT is_archived;
CREATE INDEX IF NOT EXISTS idx_participant_seq ON participant(seq);

-- Gifts (right side; play "women" in symmetric matching)
CREATE TABLE IF NOT EXISTS gift (
    id TEXT PRIMARY KEY,
    identifier TEXT NOT NULL,
    seq INTEGER NOT NULL,
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_gift_active_identifier
    ON gift(identifier) WHERE NOT is_archived;
CREATE INDEX IF NOT EXISTS idx_gift_seq ON gift(seq);

-- Pairings (one active pairing per entity, enforced by partial unique indexes)
CREATE TABLE IF NOT EXISTS pairing (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    participant_id TEXT NOT NULL REFERENCES participant(id) ON DELETE CASCADE,
    gift_id TEXT NOT NULL REFERENCES gift(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    is_archived BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_pairing_active_participant
    ON pairing(participant_id) WHERE NOT is_archived;
CREATE UNIQUE INDEX IF NOT EXISTS idx_pairing_active_gift
    ON pairing(gift_id) WHERE NOT is_archived;
CREATE INDEX IF NOT EXISTS idx_pairing_run_id ON pairing(run_id);

-- Admin accounts
CREATE TABLE IF NOT EXISTS admin (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`
