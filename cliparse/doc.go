// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3418)
  - DatabaseURL: sqlite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - CuratorSalt: Secret for curator key HMAC (required)

# CLI Flags

	-p             Server port
	-d             Database URL or sqlite path
	-t             Database type
	-curator-salt  Curator key salt

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	CURATOR_KEY_SALT → -curator-salt

CLI flags take precedence over environment variables. main loads a .env
file first when one exists, so local development needs no exported vars.

# Validation

ParseFlags returns an error if required values are missing or if
DatabaseType is not one of sqlite/postgres.
*/
package cliparse
