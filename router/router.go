// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/chainpoll/cliparse"
	"github.com/danielhkuo/chainpoll/handlers"
	"github.com/danielhkuo/chainpoll/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	responseHandler := handlers.NewResponseHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Stateless engine operations
	mux.HandleFunc("POST /surveys/validate", middleware.WithLogging(surveyHandler.ValidateSurvey))
	mux.HandleFunc("POST /surveys/hash", middleware.WithLogging(surveyHandler.HashSurvey))

	// Survey store (curator operations)
	mux.HandleFunc("POST /surveys", middleware.WithLogging(surveyHandler.CreateSurvey))
	mux.HandleFunc("GET /surveys/{hash}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("GET /surveys/{hash}/metadata", middleware.WithLogging(surveyHandler.GetMetadata))
	mux.HandleFunc("DELETE /surveys/{hash}", middleware.WithLogging(surveyHandler.DeleteSurvey))

	// Response submission (public)
	mux.HandleFunc("POST /surveys/{hash}/responses", middleware.WithLogging(responseHandler.SubmitResponse))
	mux.HandleFunc("GET /surveys/{hash}/responses/count", middleware.WithLogging(responseHandler.GetResponseCount))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chainpoll API v1"))
	})

	return mux
}
