// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - JWTSecret: HS256 signing secret (required)
  - PairingMode: symmetric or bipartite (default: symmetric)
  - PairingPolicy: strict or best-effort (default: strict)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-jwt-secret JWT signing secret
	-mode       Pairing mode
	-policy     Bipartite policy

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	JWT_SECRET     → -jwt-secret
	PAIRING_MODE   → -mode
	PAIRING_POLICY → -policy

CLI flags take precedence over environment variables. main loads a .env
file before parsing, so a checked-in .env works for development.

# Validation

ParseFlags returns an error if required values are missing or an enum
value is unknown:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - DATABASE_TYPE, PAIRING_MODE, PAIRING_POLICY must be valid values
*/
package cliparse
