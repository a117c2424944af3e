// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddEntityRequest: identifier (string or number)
  - AddEntitiesBulkRequest: identifiers / participants / gifts lists
  - MatchRequest: women and men (numeric lists)
  - RegisterRequest, LoginRequest: username, password

# Response Types

Types for JSON responses:

  - AddEntityResponse, BulkAddResponse, EntityListResponse
  - ArchiveResponse, PairingListResponse
  - MatchResponse (symmetric runs), BipartiteRunResponse
  - AuthResponse, HealthResponse, IndexResponse
  - StatusResponse, ResetResponse, ResetPairingsResponse
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Entity: identifier with pairing state and soft-delete flag
  - Pairing: one participant-gift pairing, tagged with its run
  - Admin: admin account (password hash never serialized)
  - Couple: one matched couple on the wire (kind, first, second)
  - MatchStats: per-run totals and kind counts
  - StatusSnapshot, SideStatus, PairingStatus: live status shape
  - ResetCounts: entity/pairing counts removed by a full reset

# Constants

Entity sides:

	SideParticipants = "participants"
	SideGifts        = "gifts"

Pairing engine modes:

	ModeSymmetric = "symmetric"
	ModeBipartite = "bipartite"

Bipartite policies:

	PolicyStrict     = "strict"
	PolicyBestEffort = "best-effort"
*/
package models
