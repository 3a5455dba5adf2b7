package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pawlog/pawlog/internal/store"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sanitizeErrorMessage removes internal details from error messages
func sanitizeErrorMessage(message string) string {
	sanitized := message
	if len(sanitized) > 200 {
		sanitized = sanitized[:200] + "..."
	}
	return sanitized
}

// respondJSONError sends an error JSON response with sanitized error messages
func respondJSONError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Sanitize error message to prevent information disclosure
	sanitizedMessage := sanitizeErrorMessage(message)

	response := map[string]any{
		"success":   false,
		"error":     errorType,
		"message":   sanitizedMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondStoreError maps domain errors onto the wire contract: validation
// failures are 400s, unknown ids are 404s, anything else becomes a
// generic 500 with no internal detail.
func respondStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", ve.Error())
		return
	}
	var nfe *store.NotFoundError
	if errors.As(err, &nfe) {
		respondJSONError(w, http.StatusNotFound, "Not Found", nfe.Error())
		return
	}
	respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
}

// NotFound is the handler for unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondJSONError(w, http.StatusNotFound, "Not Found", "The requested resource does not exist")
}

// MethodNotAllowed is the handler for known routes hit with the wrong verb
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "The requested method is not allowed for this resource")
}
