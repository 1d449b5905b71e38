// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

Open connects to sqlite (modernc.org/sqlite, the default) or PostgreSQL
(lib/pq) depending on configuration; CreateSchema creates the two tables:

  - survey: stored definitions, keyed by content hash; the definition JSON
    is kept verbatim so the hash can always be re-derived
  - response: accepted response payloads with a salted IP hash

The schema uses IF NOT EXISTS throughout and writes timestamps from Go, so
the same DDL runs on both drivers.
*/
package db
