// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metadata derives a survey's on-chain identity from its definition.

# Pipeline

	definition --Normalize--> ordered tree --canonical.Encode--> bytes --blake2b-256--> hash

Normalize resolves the two historical payload shapes (legacy single-question
fields vs a questions sequence) into one internal representation so nothing
downstream ever sees both. HashEnvelope wraps the normalized tree under the
fixed metadata label (17) and a surveyDetails key; SurveyHash digests the
canonical bytes of that envelope with Blake2b-256 and renders lowercase hex.

The display form (DisplayEnvelope / DisplayJSON) may carry free-text msg
lines for humans. msg is excluded from the hash preimage: editing the
message must never change a survey's identity.

All functions are pure and safe for concurrent use.
*/
package metadata
