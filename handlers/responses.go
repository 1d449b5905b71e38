// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/chainpoll/auth"
	"github.com/danielhkuo/chainpoll/cliparse"
	"github.com/danielhkuo/chainpoll/middleware"
	"github.com/danielhkuo/chainpoll/models"
	"github.com/danielhkuo/chainpoll/validate"
)

type ResponseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResponseHandler(db *sql.DB, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{db: db, cfg: cfg}
}

// SubmitResponse handles POST /surveys/{hash}/responses
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
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

	var resp models.Response
	if err := middleware.ParseJSONBody(r, &resp); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if resp.SurveyHash != hash {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "surveyHash does not match this survey")
		return
	}

	verdict := validate.Response(resp, stored.Definition)
	if !verdict.Valid {
		middleware.ValidationErrorResponse(w, verdict.Errors)
		return
	}

	respJSON, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store response")
		return
	}

	responseID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.CuratorSalt)

	_, err = h.db.Exec(`
		INSERT INTO response (id, survey_hash, payload, submitted_at, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, responseID, hash, string(respJSON), time.Now(), ipHash)
	if err != nil {
		slog.Error("failed to insert response", "survey", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store response")
		return
	}

	slog.Info("response accepted", "survey", hash, "response_id", responseID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		ResponseID: responseID,
		Message:    "Response accepted",
	})
}

// GetResponseCount handles GET /surveys/{hash}/responses/count
func (h *ResponseHandler) GetResponseCount(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")

	if _, err := loadSurvey(h.db, hash); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	} else if err != nil {
		slog.Error("failed to load survey", "hash", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load survey")
		return
	}

	var count int64
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM response WHERE survey_hash = $1
	`, hash).Scan(&count)
	if err != nil {
		slog.Error("failed to count responses", "survey", hash, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to count responses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResponseCountResponse{
		SurveyHash: hash,
		Count:      count,
	})
}
