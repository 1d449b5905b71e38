// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"strings"
	"testing"

	"github.com/danielhkuo/chainpoll/models"
)

func i64(v int64) *int64 { return &v }

func validDefinition() models.PollDefinition {
	return models.PollDefinition{
		SpecVersion: models.SpecVersion,
		Title:       "T",
		Description: "D",
		Questions: []models.Question{{
			QuestionID: "q1",
			Question:   "Pick one",
			MethodType: models.MethodSingleChoice,
			Options:    []string{"A", "B"},
		}},
	}
}

func assertValid(t *testing.T, v Verdict) {
	t.Helper()
	if !v.Valid {
		t.Errorf("Expected valid, got errors: %v", v.Errors)
	}
}

func assertInvalid(t *testing.T, v Verdict, wantSubstring string) {
	t.Helper()
	if v.Valid {
		t.Errorf("Expected invalid verdict containing %q", wantSubstring)
		return
	}
	for _, e := range v.Errors {
		if strings.Contains(e, wantSubstring) {
			return
		}
	}
	t.Errorf("No error contains %q; got: %v", wantSubstring, v.Errors)
}

func TestDefinitionValid(t *testing.T) {
	assertValid(t, Definition(validDefinition()))
}

func TestDefinitionLegacyShapeValid(t *testing.T) {
	def := models.PollDefinition{
		SpecVersion: models.SpecVersion,
		Title:       "T",
		Description: "D",
		Question:    "Pick one",
		MethodType:  models.MethodSingleChoice,
		Options:     []string{"A", "B"},
	}
	assertValid(t, Definition(def))
}

func TestDefinitionBlankTitleAndDescription(t *testing.T) {
	def := validDefinition()
	def.Title = "  "
	def.Description = ""

	v := Definition(def)
	assertInvalid(t, v, "title must not be blank")
	assertInvalid(t, v, "description must not be blank")
	if len(v.Errors) != 2 {
		t.Errorf("Expected exactly 2 errors, got %v", v.Errors)
	}
}

func TestDefinitionNoQuestions(t *testing.T) {
	def := models.PollDefinition{SpecVersion: models.SpecVersion, Title: "T", Description: "D"}
	assertInvalid(t, Definition(def), "at least one question is required")
}

func TestDefinitionSingleChoiceOptions(t *testing.T) {
	def := validDefinition()
	def.Questions[0].Options = []string{"Only"}
	assertInvalid(t, Definition(def), "at least 2 options")

	def.Questions[0].Options = []string{"A", "  "}
	assertInvalid(t, Definition(def), "option 1 must not be blank")
}

func TestDefinitionMultiSelect(t *testing.T) {
	def := validDefinition()
	def.Questions[0].MethodType = models.MethodMultiSelect
	def.Questions[0].Options = []string{"A", "B", "C"}

	assertInvalid(t, Definition(def), "maxSelections is required")

	def.Questions[0].MaxSelections = i64(2)
	assertValid(t, Definition(def))

	def.Questions[0].MaxSelections = i64(0)
	assertInvalid(t, Definition(def), "maxSelections 0 must be between 1 and 3")

	def.Questions[0].MaxSelections = i64(4)
	assertInvalid(t, Definition(def), "maxSelections 4 must be between 1 and 3")
}

func TestDefinitionNumericRange(t *testing.T) {
	def := validDefinition()
	def.Questions[0].MethodType = models.MethodNumericRange
	def.Questions[0].Options = nil

	assertInvalid(t, Definition(def), "numericConstraints is required")

	def.Questions[0].NumericConstraints = &models.NumericConstraints{MinValue: 0, MaxValue: 10}
	assertValid(t, Definition(def))

	// Inverted bounds produce exactly one error, citing the order.
	def.Questions[0].NumericConstraints = &models.NumericConstraints{MinValue: 5, MaxValue: 2}
	v := Definition(def)
	assertInvalid(t, v, "minValue 5 must not exceed maxValue 2")
	if len(v.Errors) != 1 {
		t.Errorf("Expected exactly 1 error, got %v", v.Errors)
	}

	def.Questions[0].NumericConstraints = &models.NumericConstraints{MinValue: 0, MaxValue: 10, Step: i64(0)}
	assertInvalid(t, Definition(def), "step 0 must be at least 1")
}

func TestDefinitionCallerDefinedMethod(t *testing.T) {
	def := validDefinition()
	def.Questions[0] = models.Question{
		QuestionID:       "q1",
		Question:         "Free form",
		MethodType:       "urn:example:essay-v1",
		MethodSchemaURI:  "https://example.com/essay-v1.json",
		HashAlgorithm:    models.DigestName,
		MethodSchemaHash: strings.Repeat("ab", 32),
	}
	assertValid(t, Definition(def))

	def.Questions[0].MethodSchemaURI = ""
	def.Questions[0].MethodSchemaHash = ""
	def.Questions[0].HashAlgorithm = "sha256"
	v := Definition(def)
	assertInvalid(t, v, "methodSchemaUri is required")
	assertInvalid(t, v, "methodSchemaHash is required")
	assertInvalid(t, v, `hashAlgorithm must be "blake2b-256"`)
}

func TestDefinitionDuplicateQuestionIDs(t *testing.T) {
	def := validDefinition()
	def.Questions = append(def.Questions, models.Question{
		QuestionID: "q1",
		Question:   "Pick again",
		MethodType: models.MethodSingleChoice,
		Options:    []string{"C", "D"},
	})
	assertInvalid(t, Definition(def), `duplicate questionId "q1"`)
}

func TestDefinitionMissingQuestionID(t *testing.T) {
	def := validDefinition()
	def.Questions[0].QuestionID = ""
	assertInvalid(t, Definition(def), "questionId is required")
}

func TestDefinitionReferenceAction(t *testing.T) {
	def := validDefinition()
	def.ReferenceAction = &models.ReferenceAction{
		TransactionID: strings.Repeat("ab", 32),
		ActionIndex:   0,
	}
	assertValid(t, Definition(def))

	def.ReferenceAction.TransactionID = "abc123"
	assertInvalid(t, Definition(def), "64 hex characters")

	def.ReferenceAction.TransactionID = strings.Repeat("zz", 32)
	assertInvalid(t, Definition(def), "64 hex characters")

	def.ReferenceAction.TransactionID = strings.Repeat("ab", 32)
	def.ReferenceAction.ActionIndex = -1
	assertInvalid(t, Definition(def), "actionIndex must not be negative")
}

func TestDefinitionLifecycle(t *testing.T) {
	def := validDefinition()
	def.Lifecycle = models.Lifecycle{"endEpoch": 450}
	assertValid(t, Definition(def))

	def.Lifecycle = models.Lifecycle{"endEpoch": -1}
	assertInvalid(t, Definition(def), "endEpoch must not be negative")

	// Unknown lifecycle keys pass through unvalidated.
	def.Lifecycle = models.Lifecycle{"startSlot": -5, "someFutureKey": 1}
	assertValid(t, Definition(def))
}

func TestDefinitionEnumerations(t *testing.T) {
	def := validDefinition()
	def.Eligibility = []string{models.RoleDelegateRepresentative, "shareholders"}
	assertInvalid(t, Definition(def), `eligibility role "shareholders" is not recognized`)

	def = validDefinition()
	def.VoteWeighting = "coin-flip"
	assertInvalid(t, Definition(def), `voteWeighting "coin-flip" is not recognized`)

	def.VoteWeighting = models.WeightingStakeBased
	assertValid(t, Definition(def))
}

func TestDefinitionReportsAllErrors(t *testing.T) {
	def := models.PollDefinition{
		Questions: []models.Question{{
			QuestionID: "q1",
			MethodType: models.MethodSingleChoice,
		}},
	}

	v := Definition(def)
	assertInvalid(t, v, "title must not be blank")
	assertInvalid(t, v, "description must not be blank")
	assertInvalid(t, v, "question text must not be blank")
	assertInvalid(t, v, "at least 2 options")
	if len(v.Errors) < 4 {
		t.Errorf("Expected every violation reported, got %v", v.Errors)
	}
}
