// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MetadataLabel is the transaction metadata label under which survey details
// are published on chain. Fixed for the lifetime of the process; changing it
// changes every survey hash.
const MetadataLabel = 17

// DigestName is the digest algorithm declared alongside caller-defined
// method schemas.
const DigestName = "blake2b-256"

// SpecVersion is the current survey metadata spec version.
const SpecVersion = "1.1.0"

// Built-in answer method types. Any other method string is treated as a
// caller-defined method whose schema is opaque to this service.
const (
	MethodSingleChoice = "single-choice"
	MethodMultiSelect  = "multi-select"
	MethodNumericRange = "numeric-range"
)

// Eligibility roles a survey may restrict responses to.
const (
	RoleConstitutionalCommittee = "constitutional-committee"
	RoleDelegateRepresentative  = "drep"
	RoleStakePoolOperator       = "spo"
)

// Vote weighting schemes.
const (
	WeightingCredentialBased = "credential-based"
	WeightingStakeBased      = "stake-based"
)

// EligibilityRoles lists every valid eligibility role.
var EligibilityRoles = []string{
	RoleConstitutionalCommittee,
	RoleDelegateRepresentative,
	RoleStakePoolOperator,
}

// VoteWeightings lists every valid vote weighting scheme.
var VoteWeightings = []string{
	WeightingCredentialBased,
	WeightingStakeBased,
}

// Domain types

// PollDefinition is a survey definition as authored by a caller. Two shapes
// are accepted: the current multi-question shape (non-empty Questions) and
// the legacy single-question shape, where Question/MethodType and one
// method-specific field group sit directly on the definition. A non-empty
// Questions slice is authoritative; the legacy fields are then ignored.
type PollDefinition struct {
	SpecVersion string     `json:"specVersion"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions,omitempty"`

	// Legacy single-question shape.
	Question           string              `json:"question,omitempty"`
	MethodType         string              `json:"methodType,omitempty"`
	Options            []string            `json:"options,omitempty"`
	MaxSelections      *int64              `json:"maxSelections,omitempty"`
	NumericConstraints *NumericConstraints `json:"numericConstraints,omitempty"`
	MethodSchemaURI    string              `json:"methodSchemaUri,omitempty"`
	HashAlgorithm      string              `json:"hashAlgorithm,omitempty"`
	MethodSchemaHash   string              `json:"methodSchemaHash,omitempty"`

	Eligibility     []string         `json:"eligibility,omitempty"`
	VoteWeighting   string           `json:"voteWeighting,omitempty"`
	ReferenceAction *ReferenceAction `json:"referenceAction,omitempty"`
	Lifecycle       Lifecycle        `json:"lifecycle,omitempty"`
}

// Question is a single survey question. Exactly one method-specific field
// group is populated, selected by MethodType.
type Question struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	MethodType string `json:"methodType"`

	// single-choice / multi-select
	Options []string `json:"options,omitempty"`
	// multi-select only
	MaxSelections *int64 `json:"maxSelections,omitempty"`
	// numeric-range only
	NumericConstraints *NumericConstraints `json:"numericConstraints,omitempty"`
	// caller-defined methods only
	MethodSchemaURI  string `json:"methodSchemaUri,omitempty"`
	HashAlgorithm    string `json:"hashAlgorithm,omitempty"`
	MethodSchemaHash string `json:"methodSchemaHash,omitempty"`
}

// NumericConstraints bounds a numeric-range answer.
// Invariant: MinValue <= MaxValue; Step, when present, >= 1.
type NumericConstraints struct {
	MinValue int64  `json:"minValue"`
	MaxValue int64  `json:"maxValue"`
	Step     *int64 `json:"step,omitempty"`
}

// ReferenceAction ties a survey to an on-chain governance action.
type ReferenceAction struct {
	TransactionID string `json:"transactionId"`
	ActionIndex   int64  `json:"actionIndex"`
}

// Lifecycle carries scheduling keys (endEpoch in the current schema,
// startSlot/endSlot in legacy payloads) opaquely by key. Unknown keys pass
// through untouched so old and future payloads keep hashing correctly.
type Lifecycle map[string]int64

// ResolvedQuestions returns the definition's questions with the legacy
// single-question shape resolved into one implicit question. A non-empty
// Questions slice is authoritative; the legacy fields are then ignored.
// Both shapes collapse here so nothing downstream handles them twice.
func (d PollDefinition) ResolvedQuestions() []Question {
	if len(d.Questions) > 0 {
		return d.Questions
	}
	if d.Question == "" && d.MethodType == "" {
		return nil
	}
	return []Question{{
		Question:           d.Question,
		MethodType:         d.MethodType,
		Options:            d.Options,
		MaxSelections:      d.MaxSelections,
		NumericConstraints: d.NumericConstraints,
		MethodSchemaURI:    d.MethodSchemaURI,
		HashAlgorithm:      d.HashAlgorithm,
		MethodSchemaHash:   d.MethodSchemaHash,
	}}
}

// Response is one submitted answer to a survey question.
type Response struct {
	SpecVersion string `json:"specVersion"`
	SurveyTxID  string `json:"surveyTxId"`
	SurveyHash  string `json:"surveyHash"`
	// QuestionID selects the question being answered; may be empty when the
	// survey has exactly one question.
	QuestionID   string  `json:"questionId,omitempty"`
	Selection    []int64 `json:"selection,omitempty"`
	NumericValue *int64  `json:"numericValue,omitempty"`
}

// Stored records

// StoredSurvey is a survey definition persisted by the service, keyed by its
// content hash.
type StoredSurvey struct {
	Hash       string         `json:"hash"`
	Definition PollDefinition `json:"definition"`
	CreatedAt  time.Time      `json:"created_at"`
}

// StoredResponse is an accepted response record.
type StoredResponse struct {
	ID          string    `json:"id"`
	SurveyHash  string    `json:"survey_hash"`
	Response    Response  `json:"response"`
	SubmittedAt time.Time `json:"submitted_at"`
	IPHash      *string   `json:"-"` // Never expose in JSON
}

// Response types

type CreateSurveyResponse struct {
	Hash       string `json:"hash"`
	CuratorKey string `json:"curator_key"`
}

type VerdictResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type HashSurveyResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	Hash   string   `json:"hash,omitempty"`
	CBOR   string   `json:"cbor_hex,omitempty"`
}

type MetadataResponse struct {
	Hash     string `json:"hash"`
	Metadata any    `json:"metadata"`
	CBOR     string `json:"cbor_hex"`
}

type SubmitResponseResponse struct {
	ResponseID string `json:"response_id"`
	Message    string `json:"message"`
}

type ResponseCountResponse struct {
	SurveyHash string `json:"survey_hash"`
	Count      int64  `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}
