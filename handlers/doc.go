// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the RandomGift API.

# Handler Types

Each handler is a struct with its dependencies injected at construction:

  - EntityHandler: identifier CRUD for one side (mounted twice)
  - PairingHandler: matching runs, pairing list and archive
  - MatchHandler: stateless symmetric matching (no store access)
  - AuthHandler: admin registration and login
  - SystemHandler: index, health, status, resets
  - ExportHandler: CSV and PDF downloads

Handlers receive the store (and where relevant the engine and config):

	st := store.New(db)
	participantHandler := handlers.NewEntityHandler(st, models.SideParticipants)

# Entity Flow

Both sides share one handler type:

	POST   /participants              → Add (single identifier)
	POST   /participants/bulk         → AddBulk (JSON list or CSV/XLSX upload)
	GET    /participants              → List (active, with pairing state)
	DELETE /participants/{identifier} → Archive (soft delete, cascades)

and the same four routes under /gifts. Identifiers may arrive as JSON
strings or numbers; numbers are coerced to their decimal form.

# Matching

POST /pairings runs the engine in the configured mode (symmetric or
bipartite) over the unpaired sets and persists the results. POST /match
is the stateless variant: it takes numeric women/men groups in the body,
validates them, and reports couples and stats without touching storage.

# File Ingestion

Bulk uploads accept multipart form-data with a "file" field (.csv or
.xlsx). The header row is sniffed for an identifier column; recognized
names include "identifier", "numero", and the side's own name.

# Authentication

Mutating routes sit behind middleware.RequireAuth. Tokens come from
POST /auth/login; accounts from POST /auth/register or the admin CLI.
*/
package handlers
