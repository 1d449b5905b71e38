// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metadata

import (
	"sort"

	"github.com/danielhkuo/chainpoll/canonical"
	"github.com/danielhkuo/chainpoll/models"
)

// Normalize converts a survey definition into the ordered, key-complete tree
// the canonical encoder consumes.
//
// Both historical payload shapes resolve to the same tree: the legacy
// single-question fields become a one-element questions sequence, so a
// legacy definition and its equivalent questions-sequence form hash
// identically. A non-empty Questions slice is authoritative over the legacy
// fields. Absent optional fields are omitted entirely, never emitted as
// null or an empty placeholder.
//
// Normalize is total over structurally well-typed input; semantic checks
// belong to the validate package and run before hashing.
func Normalize(def models.PollDefinition) canonical.Map {
	m := canonical.Map{
		{Key: "specVersion", Value: def.SpecVersion},
		{Key: "title", Value: def.Title},
		{Key: "description", Value: def.Description},
	}

	resolved := def.ResolvedQuestions()
	questions := make([]any, len(resolved))
	for i, q := range resolved {
		questions[i] = normalizeQuestion(q)
	}
	m = append(m, canonical.Pair{Key: "questions", Value: questions})

	if len(def.Eligibility) > 0 {
		// Eligibility is a set: sort so construction order never leaks into
		// the hash.
		roles := make([]string, len(def.Eligibility))
		copy(roles, def.Eligibility)
		sort.Strings(roles)
		m = append(m, canonical.Pair{Key: "eligibility", Value: roles})
	}
	if def.VoteWeighting != "" {
		m = append(m, canonical.Pair{Key: "voteWeighting", Value: def.VoteWeighting})
	}
	if def.ReferenceAction != nil {
		m = append(m, canonical.Pair{Key: "referenceAction", Value: canonical.Map{
			{Key: "transactionId", Value: def.ReferenceAction.TransactionID},
			{Key: "actionIndex", Value: def.ReferenceAction.ActionIndex},
		}})
	}
	if len(def.Lifecycle) > 0 {
		m = append(m, canonical.Pair{Key: "lifecycle", Value: normalizeLifecycle(def.Lifecycle)})
	}

	return m
}

// normalizeQuestion emits questionId (when present), question, methodType,
// then exactly one method-specific field group. Legacy definitions carry no
// questionId, so the key is simply absent for them.
func normalizeQuestion(q models.Question) canonical.Map {
	m := make(canonical.Map, 0, 4)
	if q.QuestionID != "" {
		m = append(m, canonical.Pair{Key: "questionId", Value: q.QuestionID})
	}
	m = append(m, canonical.Pair{Key: "question", Value: q.Question})
	m = append(m, canonical.Pair{Key: "methodType", Value: q.MethodType})

	switch q.MethodType {
	case models.MethodSingleChoice:
		m = append(m, canonical.Pair{Key: "options", Value: q.Options})
	case models.MethodMultiSelect:
		m = append(m, canonical.Pair{Key: "options", Value: q.Options})
		if q.MaxSelections != nil {
			m = append(m, canonical.Pair{Key: "maxSelections", Value: *q.MaxSelections})
		}
	case models.MethodNumericRange:
		if q.NumericConstraints != nil {
			nc := canonical.Map{
				{Key: "minValue", Value: q.NumericConstraints.MinValue},
				{Key: "maxValue", Value: q.NumericConstraints.MaxValue},
			}
			if q.NumericConstraints.Step != nil {
				nc = append(nc, canonical.Pair{Key: "step", Value: *q.NumericConstraints.Step})
			}
			m = append(m, canonical.Pair{Key: "numericConstraints", Value: nc})
		}
	default:
		// Caller-defined method: the schema is referenced, not embedded.
		if q.MethodSchemaURI != "" {
			m = append(m, canonical.Pair{Key: "methodSchemaUri", Value: q.MethodSchemaURI})
		}
		if q.HashAlgorithm != "" {
			m = append(m, canonical.Pair{Key: "hashAlgorithm", Value: q.HashAlgorithm})
		}
		if q.MethodSchemaHash != "" {
			m = append(m, canonical.Pair{Key: "methodSchemaHash", Value: q.MethodSchemaHash})
		}
	}

	return m
}

// normalizeLifecycle emits whatever keys the lifecycle actually holds.
// Schema variants (endEpoch vs legacy startSlot/endSlot, or keys this build
// has never seen) pass through opaquely; canonical encoding fixes their
// byte order downstream.
func normalizeLifecycle(lc models.Lifecycle) canonical.Map {
	keys := make([]string, 0, len(lc))
	for k := range lc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(canonical.Map, 0, len(keys))
	for _, k := range keys {
		m = append(m, canonical.Pair{Key: k, Value: lc[k]})
	}
	return m
}
