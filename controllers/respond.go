// Package controllers holds the HTTP handlers for the resource services.
// Each handler resolves the caller's identity first, performs exactly one
// repository operation, and writes JSON back.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Snehagupta00/TrueGrit/logger"
	"github.com/Snehagupta00/TrueGrit/middleware"
	"github.com/Snehagupta00/TrueGrit/repository"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// identity resolves the authenticated caller, writing a 401 when absent.
// The middleware normally guarantees presence; this guards handlers that
// are exercised directly in tests or wired outside the auth group.
func identity(w http.ResponseWriter, r *http.Request) (*middleware.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return id, true
}

// storeError converts a repository failure to an HTTP response. Raw store
// errors are logged, never echoed to the client.
func storeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
