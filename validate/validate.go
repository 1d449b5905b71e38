// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/chainpoll/models"
)

// Verdict is a validation outcome: either fully valid, or invalid with the
// complete ordered list of violated rules. Callers surface every problem at
// once instead of fixing one and resubmitting.
type Verdict struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func verdict(errs []string) Verdict {
	return Verdict{Valid: len(errs) == 0, Errors: errs}
}

// Definition checks the structural and semantic invariants of a survey
// definition. It never returns an error or panics on malformed-but-well-typed
// input; the outcome is always a Verdict.
func Definition(def models.PollDefinition) Verdict {
	var errs []string

	if blank(def.Title) {
		errs = append(errs, "title must not be blank")
	}
	if blank(def.Description) {
		errs = append(errs, "description must not be blank")
	}

	questions := def.ResolvedQuestions()
	if len(questions) == 0 {
		errs = append(errs, "at least one question is required")
	}

	multi := len(def.Questions) > 0
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		label := questionLabel(q, i, multi)

		if multi {
			if blank(q.QuestionID) {
				errs = append(errs, fmt.Sprintf("%s: questionId is required", label))
			} else if seen[q.QuestionID] {
				errs = append(errs, fmt.Sprintf("duplicate questionId %q", q.QuestionID))
			}
			seen[q.QuestionID] = true
		}
		if blank(q.Question) {
			errs = append(errs, fmt.Sprintf("%s: question text must not be blank", label))
		}
		errs = append(errs, checkMethod(q, label)...)
	}

	errs = append(errs, checkPollLevel(def)...)

	return verdict(errs)
}

func checkMethod(q models.Question, label string) []string {
	var errs []string

	if blank(q.MethodType) {
		return []string{fmt.Sprintf("%s: methodType is required", label)}
	}

	switch q.MethodType {
	case models.MethodSingleChoice:
		errs = append(errs, checkOptions(q.Options, label)...)

	case models.MethodMultiSelect:
		errs = append(errs, checkOptions(q.Options, label)...)
		if q.MaxSelections == nil {
			errs = append(errs, fmt.Sprintf("%s: maxSelections is required for multi-select", label))
		} else if *q.MaxSelections < 1 || *q.MaxSelections > int64(len(q.Options)) {
			errs = append(errs, fmt.Sprintf("%s: maxSelections %d must be between 1 and %d",
				label, *q.MaxSelections, len(q.Options)))
		}

	case models.MethodNumericRange:
		nc := q.NumericConstraints
		if nc == nil {
			errs = append(errs, fmt.Sprintf("%s: numericConstraints is required for numeric-range", label))
			break
		}
		if nc.MinValue > nc.MaxValue {
			errs = append(errs, fmt.Sprintf("%s: minValue %d must not exceed maxValue %d",
				label, nc.MinValue, nc.MaxValue))
		}
		if nc.Step != nil && *nc.Step < 1 {
			errs = append(errs, fmt.Sprintf("%s: step %d must be at least 1", label, *nc.Step))
		}

	default:
		// Caller-defined method: the schema itself is opaque, but its
		// reference must be complete.
		if blank(q.MethodSchemaURI) {
			errs = append(errs, fmt.Sprintf("%s: methodSchemaUri is required for method %q", label, q.MethodType))
		}
		if blank(q.MethodSchemaHash) {
			errs = append(errs, fmt.Sprintf("%s: methodSchemaHash is required for method %q", label, q.MethodType))
		}
		if q.HashAlgorithm != models.DigestName {
			errs = append(errs, fmt.Sprintf("%s: hashAlgorithm must be %q", label, models.DigestName))
		}
	}

	return errs
}

func checkOptions(options []string, label string) []string {
	var errs []string
	if len(options) < 2 {
		errs = append(errs, fmt.Sprintf("%s: at least 2 options are required", label))
	}
	for i, opt := range options {
		if blank(opt) {
			errs = append(errs, fmt.Sprintf("%s: option %d must not be blank", label, i))
		}
	}
	return errs
}

func checkPollLevel(def models.PollDefinition) []string {
	var errs []string

	if ra := def.ReferenceAction; ra != nil {
		if !isHex(ra.TransactionID) || len(ra.TransactionID) != 64 {
			errs = append(errs, "referenceAction.transactionId must be exactly 64 hex characters")
		}
		if ra.ActionIndex < 0 {
			errs = append(errs, "referenceAction.actionIndex must not be negative")
		}
	}

	if endEpoch, ok := def.Lifecycle["endEpoch"]; ok && endEpoch < 0 {
		errs = append(errs, "lifecycle.endEpoch must not be negative")
	}

	for _, role := range def.Eligibility {
		if !contains(models.EligibilityRoles, role) {
			errs = append(errs, fmt.Sprintf("eligibility role %q is not recognized", role))
		}
	}

	if def.VoteWeighting != "" && !contains(models.VoteWeightings, def.VoteWeighting) {
		errs = append(errs, fmt.Sprintf("voteWeighting %q is not recognized", def.VoteWeighting))
	}

	return errs
}

func questionLabel(q models.Question, i int, multi bool) string {
	if !multi {
		return "question"
	}
	if blank(q.QuestionID) {
		return fmt.Sprintf("question %d", i)
	}
	return fmt.Sprintf("question %q", q.QuestionID)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func contains(set []string, s string) bool {
	for _, elem := range set {
		if elem == s {
			return true
		}
	}
	return false
}
