package middleware

import (
	"net/http"
)

const (
	// DefaultMaxRequestSize is the default maximum request body size (1MB)
	DefaultMaxRequestSize int64 = 1 << 20 // 1MB
)

const oversizeBody = `{"success":false,"error":"Request Entity Too Large","message":"Request body exceeds the maximum allowed size"}`

// MaxRequestSize limits the size of request bodies to prevent DoS attacks.
// Bodies that exceed the limit mid-read surface as MaxBytesError in the
// handlers; declared oversize requests are rejected up front with the
// enveloped 413.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check Content-Length header early if present
			if r.ContentLength > maxBytes {
				respondRawJSON(w, http.StatusRequestEntityTooLarge, oversizeBody)
				return
			}

			// Wrap the request body with MaxBytesReader
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			defer r.Body.Close()

			next.ServeHTTP(w, r)
		})
	}
}
