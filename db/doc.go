// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - participant: left-side identifiers with soft-delete flag
  - gift: right-side identifiers, same shape as participant
  - pairing: one row per participant-gift pairing, tagged with its run
  - admin: admin accounts (bcrypt password hashes)

# Portability

The DDL sticks to TEXT/INTEGER/BOOLEAN/TIMESTAMP with app-assigned UUIDs
and timestamps, so the same schema runs on SQLite (modernc.org/sqlite)
and PostgreSQL (lib/pq) unchanged.

# Soft Delete

Archiving sets is_archived and every query filters on it. Partial unique
indexes enforce uniqueness only among active rows:

  - participant.identifier, gift.identifier: one active row per identifier
  - pairing.participant_id, pairing.gift_id: at most one active pairing
    per entity (the 1:1 invariant)

A seq column on each table preserves insertion order across archives.
*/
package db
