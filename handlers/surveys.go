// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/chainpoll/auth"
	"github.com/danielhkuo/chainpoll/cliparse"
	"github.com/danielhkuo/chainpoll/metadata"
	"github.com/danielhkuo/chainpoll/middleware"
	"github.com/danielhkuo/chainpoll/models"
	"github.com/danielhkuo/chainpoll/validate"
)

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{db: db, cfg: cfg}
}

// CreateSurvey handles POST /surveys
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var def models.PollDefinition
	if err := middleware.ParseJSONBody(r, &def); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	verdict := validate.Definition(def)
	if !verdict.Valid {
		middleware.ValidationErrorResponse(w, verdict.Errors)
		return
	}

	hash, err := metadata.SurveyHash(def)
	if err != nil {
		// Validated input must always encode; anything else is a bug.
		slog.Error("failed to hash validated survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute survey hash")
		return
	}

	defJSON, err := json.Marshal(def)
	if err != nil {
		slog.Error("failed to marshal definition", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store survey")
		return
	}

	var exists int
	if err := h.db.QueryRow(`SELECT 1 FROM survey WHERE hash = $1`, hash).Scan(&exists); err == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Survey already stored")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO survey (hash, definition, created_at)
		VALUES ($1, $2, $3)
	`, hash, string(defJSON), time.Now())
	if err != nil {
		slog.Error("failed to insert survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store survey")
		return
	}

	slog.Info("survey stored", "hash", hash, "title", def.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSurveyResponse{
		Hash:       hash,
		CuratorKey: auth.GenerateCuratorKey(hash, h.cfg.CuratorSalt),
	})
}

// ValidateSurvey handles POST /surveys/validate
func (h *SurveyHandler) ValidateSurvey(w http.ResponseWriter, r *http.Request) {
	var def models.PollDefinition
	if err := middleware.ParseJSONBody(r, &def); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	verdict := validate.Definition(def)
	middleware.JSONResponse(w, http.StatusOK, models.VerdictResponse{
		Valid:  verdict.Valid,
		Errors: verdict.Errors,
	})
}

// HashSurvey handles POST /surveys/hash
func (h *SurveyHandler) HashSurvey(w http.ResponseWriter, r *http.Request) {
	var def models.PollDefinition
	if err := middleware.ParseJSONBody(r, &def); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	verdict := validate.Definition(def)
	if !verdict.Valid {
		middleware.JSONResponse(w, http.StatusOK, models.HashSurveyResponse{
			Valid:  false,
			Errors: verdict.Errors,
		})
		return
	}

	encoded, err := metadata.EncodeSurvey(def)
	if err != nil {
		slog.Error("failed to encode validated survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode survey")
		return
	}
	hash, err := metadata.SurveyHashFromBytes(encoded)
	if err != nil {
		slog.Error("failed to hash survey envelope", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute survey hash")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HashSurveyResponse{
		Valid: true,
		Hash:  hash,
		CBOR:  hex.EncodeToString(encoded),
	})
}

// GetSurvey handles GET /surveys/{hash}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	stored, err := loadSurvey(h.db, hash)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to load survey", "hash", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stored)
}

// GetMetadata handles GET /surveys/{hash}/metadata
//
// Returns the display/export metadata envelope, which may carry msg lines
// (repeated ?msg= query parameters), plus the canonical CBOR of the hash
// envelope. The msg lines never influence the hash.
func (h *SurveyHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	stored, err := loadSurvey(h.db, hash)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to load survey", "hash", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load survey")
		return
	}

	msg := r.URL.Query()["msg"]
	encoded, err := metadata.EncodeSurvey(stored.Definition)
	if err != nil {
		slog.Error("failed to encode stored survey", "hash", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MetadataResponse{
		Hash:     hash,
		Metadata: metadata.DisplayJSON(metadata.DisplayEnvelope(stored.Definition, msg)),
		CBOR:     hex.EncodeToString(encoded),
	})
}

// DeleteSurvey handles DELETE /surveys/{hash}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	key := r.Header.Get("X-Curator-Key")
	if err := auth.ValidateCuratorKey(hash, key, h.cfg.CuratorSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid curator key")
		return
	}

	result, err := h.db.Exec(`DELETE FROM survey WHERE hash = $1`, hash)
	if err != nil {
		slog.Error("failed to delete survey", "hash", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete survey")
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}

	slog.Info("survey deleted", "hash", hash)
	w.WriteHeader(http.StatusNoContent)
}

// loadSurvey fetches a stored survey by content hash.
func loadSurvey(db *sql.DB, hash string) (models.StoredSurvey, error) {
	var (
		defJSON   string
		createdAt time.Time
	)
	err := db.QueryRow(`
		SELECT definition, created_at FROM survey WHERE hash = $1
	`, hash).Scan(&defJSON, &createdAt)
	if err != nil {
		return models.StoredSurvey{}, err
	}

	var def models.PollDefinition
	if err := json.Unmarshal([]byte(defJSON), &def); err != nil {
		return models.StoredSurvey{}, err
	}

	return models.StoredSurvey{Hash: hash, Definition: def, CreatedAt: createdAt}, nil
}
