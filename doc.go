// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the RandomGift API server.

RandomGift is a small pairing service: it manages two collections of
identifiers (participants and gifts, doubling as men and women in the
symmetric mode) and produces randomized pairings between them, with
soft-delete semantics and persistent storage.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=randomgift.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 5000 -d randomgift.db -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HS256 signing secret for admin tokens

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PAIRING_MODE (-mode): symmetric or bipartite (default: symmetric)
  - PAIRING_POLICY (-policy): strict or best-effort (default: strict)

A .env file in the working directory is loaded on startup; real
environment variables take precedence.

# Admin Accounts

Admin accounts can be registered over HTTP (POST /auth/register) or
managed from the command line:

	ADMIN_USERNAME=boss ADMIN_PASSWORD=secret go run . admin create
	go run . admin list
	go run . admin delete

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: entity sets, pairings, and admin records over database/sql
  - pairing: matching algorithms and the store-backed engine
  - handlers: HTTP request handlers (entities, pairings, match, auth, system, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, bearer-token guard
  - models: Request/response types
  - auth: JWT issuance/validation and password hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
