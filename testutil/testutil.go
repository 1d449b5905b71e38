// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/chainpoll/cliparse"
	"github.com/danielhkuo/chainpoll/db"
	"github.com/danielhkuo/chainpoll/metadata"
	"github.com/danielhkuo/chainpoll/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A pooled second connection would see a different in-memory database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3418,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		CuratorSalt:  "test-curator-salt",
	}
}

// SingleChoiceDefinition returns a minimal valid survey definition
func SingleChoiceDefinition() models.PollDefinition {
	return models.PollDefinition{
		SpecVersion: models.SpecVersion,
		Title:       "Test Survey",
		Description: "A test survey",
		Questions: []models.Question{{
			QuestionID: "q1",
			Question:   "Pick one",
			MethodType: models.MethodSingleChoice,
			Options:    []string{"A", "B"},
		}},
	}
}

// StoreSurvey inserts a definition into the database and returns its
// content hash
func StoreSurvey(t *testing.T, conn *sql.DB, def models.PollDefinition) string {
	t.Helper()

	hash, err := metadata.SurveyHash(def)
	if err != nil {
		t.Fatalf("Failed to hash test survey: %v", err)
	}

	defJSON, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("Failed to marshal test survey: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO survey (hash, definition, created_at)
		VALUES ($1, $2, $3)
	`, hash, string(defJSON), time.Now())
	if err != nil {
		t.Fatalf("Failed to store test survey: %v", err)
	}

	return hash
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
