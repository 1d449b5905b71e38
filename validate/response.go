// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"

	"github.com/danielhkuo/chainpoll/models"
)

// Response checks a submitted response against its survey's definition,
// dispatching on the answered question's method type. Like Definition, it
// always returns a complete Verdict and never panics on well-typed input.
func Response(resp models.Response, def models.PollDefinition) Verdict {
	var errs []string

	if blank(resp.SurveyTxID) {
		errs = append(errs, "surveyTxId must not be blank")
	}
	if blank(resp.SurveyHash) {
		errs = append(errs, "surveyHash must not be blank")
	}

	q, qErrs := matchQuestion(resp, def)
	errs = append(errs, qErrs...)
	if q == nil {
		return verdict(errs)
	}

	switch q.MethodType {
	case models.MethodSingleChoice:
		if len(resp.Selection) != 1 {
			errs = append(errs, fmt.Sprintf("single-choice requires exactly one selection, got %d", len(resp.Selection)))
		}
		errs = append(errs, checkIndices(resp.Selection, len(q.Options))...)

	case models.MethodMultiSelect:
		max := int64(len(q.Options))
		if q.MaxSelections != nil {
			max = *q.MaxSelections
		}
		if len(resp.Selection) < 1 {
			errs = append(errs, "multi-select requires at least one selection")
		} else if int64(len(resp.Selection)) > max {
			errs = append(errs, fmt.Sprintf("selection count %d exceeds maxSelections %d", len(resp.Selection), max))
		}
		errs = append(errs, checkIndices(resp.Selection, len(q.Options))...)
		errs = append(errs, checkDuplicates(resp.Selection)...)

	case models.MethodNumericRange:
		nc := q.NumericConstraints
		if resp.NumericValue == nil {
			errs = append(errs, "numericValue is required for numeric-range")
			break
		}
		if nc == nil {
			break
		}
		v := *resp.NumericValue
		if v < nc.MinValue || v > nc.MaxValue {
			errs = append(errs, fmt.Sprintf("numericValue %d must be between %d and %d", v, nc.MinValue, nc.MaxValue))
		} else if nc.Step != nil && (v-nc.MinValue)%*nc.Step != 0 {
			errs = append(errs, fmt.Sprintf("numericValue %d must be a multiple of step %d from minValue %d", v, *nc.Step, nc.MinValue))
		}

	default:
		// Caller-defined method: the answer schema is opaque here. Presence
		// was established by matching the question; nothing more to check.
	}

	return verdict(errs)
}

// matchQuestion resolves which question the response answers. A response
// without a questionId is only unambiguous for single-question surveys.
func matchQuestion(resp models.Response, def models.PollDefinition) (*models.Question, []string) {
	questions := def.ResolvedQuestions()
	if len(questions) == 0 {
		return nil, []string{"survey definition has no questions"}
	}

	if resp.QuestionID == "" {
		if len(questions) != 1 {
			return nil, []string{"questionId is required for multi-question surveys"}
		}
		return &questions[0], nil
	}

	for i := range questions {
		if questions[i].QuestionID == resp.QuestionID {
			return &questions[i], nil
		}
	}
	return nil, []string{fmt.Sprintf("questionId %q does not exist in the survey", resp.QuestionID)}
}

func checkIndices(selection []int64, optionCount int) []string {
	var errs []string
	for _, idx := range selection {
		if idx < 0 || idx >= int64(optionCount) {
			errs = append(errs, fmt.Sprintf("selection index %d is out of range [0, %d)", idx, optionCount))
		}
	}
	return errs
}

func checkDuplicates(selection []int64) []string {
	seen := make(map[int64]bool, len(selection))
	var errs []string
	for _, idx := range selection {
		if seen[idx] {
			errs = append(errs, fmt.Sprintf("selection index %d is duplicated", idx))
		}
		seen[idx] = true
	}
	return errs
}
