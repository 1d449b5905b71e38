// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Logging

WithLogging wraps a handler with structured request/completion logging
via log/slog.

# JSON Helpers

  - JSONResponse: write a JSON response with status code
  - ErrorResponse: write a models.ErrorResponse
  - ValidationErrorResponse: write a 422 with the complete list of violated
    validation rules
  - ParseJSONBody: decode a request body into a struct

# CORS

CORS allows cross-origin requests from the form frontend and handles
preflight OPTIONS requests. The X-Curator-Key header is allowed for
curator-authenticated endpoints.

# Client IP

GetClientIP resolves the caller's IP from X-Forwarded-For, X-Real-IP, or
RemoteAddr, used for privacy-preserving response deduplication.
*/
package middleware
