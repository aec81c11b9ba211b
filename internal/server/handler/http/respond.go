package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/bookshelf/internal/common"
)

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to a status code and a generic message.
// Internal details are never surfaced to the client.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var msg string
	switch {
	case errors.Is(err, common.ErrValidation):
		status, msg = http.StatusBadRequest, "invalid request"
	case errors.Is(err, common.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	default:
		status, msg = http.StatusInternalServerError, "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
