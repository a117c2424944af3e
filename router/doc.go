// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the RandomGift API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Authentication (public):

	POST /auth/register - Register an admin account
	POST /auth/login    - Log in, receive a bearer token

Entities (reads public, writes require Authorization: Bearer <token>):

	POST   /participants              - Add a participant
	POST   /participants/bulk         - Bulk add (JSON or file upload)
	GET    /participants              - List active participants
	DELETE /participants/{identifier} - Archive a participant

and the same shape under /gifts.

Pairings and matching:

	POST   /pairings              - Run the configured matching mode
	GET    /pairings              - List active pairings
	DELETE /pairings/{identifier} - Archive by participant identifier
	POST   /match                 - Stateless symmetric matching

System:

	GET    /{$}            - Service banner and endpoint catalog
	GET    /health         - Health check
	GET    /status         - Live snapshot
	DELETE /reset          - Wipe entities and pairings
	DELETE /reset/pairings - Wipe pairings only

Export (authenticated):

	GET /export/csv - Pairings as CSV attachment
	GET /export/pdf - Pairings as PDF attachment

# Handler Initialization

The router builds the store and engine once and injects them:

	st := store.New(db)
	engine := pairing.NewEngine(st, rng)

One EntityHandler instance serves each side. The stateless match handler
shares the engine's random source.
*/
package router
