// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate enforces the structural and semantic invariants of survey
definitions and responses.

Both entry points return a Verdict rather than an error: a definition or
response is either fully valid, or rejected with the complete ordered list
of violated rules so a caller can display every problem at once. Nothing
here panics on malformed-but-well-typed input.

# Definition Rules

Per question, by method type:

  - single-choice: at least 2 non-blank options
  - multi-select: at least 2 non-blank options; 1 <= maxSelections <= len(options)
  - numeric-range: minValue <= maxValue; step absent or >= 1
  - caller-defined (any other method): methodSchemaUri and methodSchemaHash
    non-blank; hashAlgorithm fixed to "blake2b-256"

Poll-level: non-blank title/description, at least one question with non-blank
text, unique questionIds, a 64-hex-character referenceAction.transactionId
with non-negative actionIndex, non-negative lifecycle.endEpoch, and
eligibility/voteWeighting drawn from the fixed enumerations.

The legacy single-question shape is treated as one implicit question via
models.PollDefinition.ResolvedQuestions.

# Response Rules

Dispatched by the matched question's method: single-choice takes exactly one
in-range index; multi-select between 1 and maxSelections distinct in-range
indices; numeric-range a value within [minValue, maxValue] on a step
boundary; caller-defined methods are structurally opaque.
*/
package validate
