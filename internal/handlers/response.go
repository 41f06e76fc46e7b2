// Package handlers implements the HTTP endpoints behind each dashboard page.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/logger"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": msg}.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

func validationFailed(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":   "Validation failed",
		"details": errs,
	})
}

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = "5"

// writeAppError maps the typed errors of apperr to responses. Anything else
// is logged and answered with a generic 500.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		ve *apperr.ValidationError
		te *apperr.TransientIOError
		fe *apperr.FatalStateError
	)
	switch {
	case errors.As(err, &ve):
		validationFailed(w, ve.Fields)
	case errors.As(err, &te):
		log.Warn("transient failure", zap.String("op", te.Op), zap.Error(te.Err))
		w.Header().Set("Retry-After", retryAfterSeconds)
		JSONError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry")
	case errors.As(err, &fe):
		log.Error("inconsistent data", zap.String("reason", fe.Reason))
		JSONError(w, http.StatusInternalServerError, "Inconsistent data")
	default:
		log.Error("request failed", zap.Error(err))
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// listResponse is the shape of every page listing.
func listResponse(data interface{}, total int, stats interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data":  data,
		"total": total,
		"stats": stats,
	}
}
