package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
)

// writeError maps the service error taxonomy onto HTTP status codes and
// renders a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		accessDenied *appErrors.ErrAccessDenied
		notFound     *appErrors.ErrNotFound
		kbMissing    *appErrors.ErrKnowledgeBaseMissing
		generation   *appErrors.ErrGeneration
		invalid      *appErrors.ErrInvalidInput
	)
	switch {
	case errors.As(err, &accessDenied):
		status = http.StatusForbidden
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &kbMissing):
		status = http.StatusPreconditionFailed
	case errors.As(err, &generation):
		status = http.StatusBadGateway
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
