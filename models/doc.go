// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the survey metadata data model, fixed enumerations,
and the API response types.

# Domain Types

  - PollDefinition: a survey definition, in the multi-question shape
    (questions: [...]) or the legacy single-question shape
  - Question: one question with exactly one method-specific field group
  - NumericConstraints: minValue/maxValue/step bounds for numeric answers
  - ReferenceAction: transactionId + actionIndex of a governance action
  - Lifecycle: opaque key/value scheduling map (endEpoch, legacy slots)
  - Response: one submitted answer to a survey question

# Constants

Answer methods:

	MethodSingleChoice = "single-choice"
	MethodMultiSelect  = "multi-select"
	MethodNumericRange = "numeric-range"

Any other method string is caller-defined and opaque to this service.

Eligibility roles:

	RoleConstitutionalCommittee = "constitutional-committee"
	RoleDelegateRepresentative  = "drep"
	RoleStakePoolOperator       = "spo"

Vote weightings:

	WeightingCredentialBased = "credential-based"
	WeightingStakeBased      = "stake-based"

MetadataLabel (17) is the on-chain metadata label surveys are published
under, and DigestName ("blake2b-256") the content hash algorithm.

# Stored Records

  - StoredSurvey: a definition persisted by the service, keyed by content hash
  - StoredResponse: an accepted response record

# Response Types

Types serialized as JSON responses by the handlers: CreateSurveyResponse,
VerdictResponse, HashSurveyResponse, MetadataResponse, SubmitResponseResponse,
ResponseCountResponse, ErrorResponse.
*/
package models
