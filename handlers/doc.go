// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers over the survey metadata
engine.

# Survey Operations

  - CreateSurvey: validate a definition, compute its content hash, store it,
    and return the hash plus a curator key
  - ValidateSurvey: validation verdict only, nothing stored
  - HashSurvey: verdict plus content hash and canonical CBOR hex,
    nothing stored
  - GetSurvey: fetch a stored definition by content hash
  - GetMetadata: the display metadata envelope (optionally carrying msg
    lines) plus hash-envelope CBOR hex
  - DeleteSurvey: remove a stored survey (curator key required)

# Response Operations

  - SubmitResponse: validate a response against its survey's definition and
    store it on acceptance
  - GetResponseCount: count of accepted responses

Handlers follow a consistent order: parse, validate, engine, persist,
respond. Validation failures return 422 with the complete list of violated
rules; engine failures on validated input are logged and returned as 500 since
they indicate a bug, not bad input.
*/
package handlers
