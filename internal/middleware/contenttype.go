package middleware

import (
	"net/http"
	"strings"
)

const (
	missingContentTypeBody = `{"success":false,"error":"Bad Request","message":"Content-Type header is required"}`
	wrongContentTypeBody   = `{"success":false,"error":"Unsupported Media Type","message":"Content-Type must be application/json"}`
)

// ContentType validates Content-Type headers for requests with bodies
func ContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only validate Content-Type for methods that typically have bodies
		if r.Method == "POST" || r.Method == "PATCH" || r.Method == "PUT" {
			contentType := r.Header.Get("Content-Type")

			if contentType == "" {
				respondRawJSON(w, http.StatusBadRequest, missingContentTypeBody)
				return
			}

			// Require application/json, allowing a charset suffix
			if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				respondRawJSON(w, http.StatusUnsupportedMediaType, wrongContentTypeBody)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func respondRawJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
