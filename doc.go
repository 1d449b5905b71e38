// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the chainpoll API server.

chainpoll authors and records on-chain surveys. Its core is a canonical
metadata engine: a survey definition is normalized into a deterministic
tree, encoded as RFC 8949 core deterministic CBOR, and hashed with
Blake2b-256 under a fixed label-17 envelope. Independent implementations
(browser form, CLI, chain indexer) computing the same bytes for the same
logical survey is the compatibility contract everything else hangs on.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=file:chainpoll.db CURATOR_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3418 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - CURATOR_KEY_SALT (-curator-salt): Secret for curator key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3418)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

The engine packages are pure and independently usable:

  - models: survey/response data model and fixed enumerations
  - canonical: deterministic CBOR encoding (ordered maps, explicit key sort)
  - metadata: normalizer, hash/display envelopes, Blake2b-256 content hash
  - validate: definition and response validation verdicts

The service wraps them in an HTTP surface:

  - handlers: HTTP request handlers (surveys, responses)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: curator keys and IP hashing
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
