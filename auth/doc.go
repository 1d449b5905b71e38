// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides curator key and token utilities for the survey store.

# Curator Keys

Curator keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateCuratorKey(surveyHash, salt)
	err := auth.ValidateCuratorKey(surveyHash, key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic
from the survey's content hash and the salt, it can be validated without
storing it in the database.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving deduplication of response submissions:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
