package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"stock-backend/internal/apperrors"
)

// JSON writes data as a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[Response] Failed to encode JSON response: %v", err)
	}
}

// Error writes an error response, mapping the domain sentinels to HTTP
// status codes. Unrecognized errors become a 500 with a generic message so
// internals never leak to clients.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateName):
		JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidArgument):
		JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMissingPrice):
		JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		log.Printf("[Response] Internal error: %v", err)
		JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
