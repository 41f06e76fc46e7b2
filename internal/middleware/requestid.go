package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"inmogestor-backend/internal/ctxkeys"
	"inmogestor-backend/internal/logger"
)

// maxRequestIDLen bounds a client-supplied X-Request-ID.
const maxRequestIDLen = 64

// RequestID keeps a well-formed incoming X-Request-ID or generates one,
// echoes it on the response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(logger.RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		r.Header.Set(logger.RequestIDHeader, requestID)
		w.Header().Set(logger.RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), ctxkeys.RequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validRequestID accepts up to maxRequestIDLen letters, digits, '.', '_'
// and '-'.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
