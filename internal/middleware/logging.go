package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/pawlog/pawlog/internal/logger"
	"github.com/pawlog/pawlog/internal/request"
)

// Logging emits one http_request line per request describing the
// outcome the client saw. Path and client address go through the log
// sanitizers; raw request data never reaches the log stream.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newResponseRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", logpkg.SanitizePath(r.URL.Path)),
				zap.String("client_ip", logpkg.SanitizeString(request.ClientIP(r), logpkg.MaxGeneralStringLength)),
				zap.Int("status_code", rec.status),
				zap.Int("response_bytes", rec.bytes),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}
