package middleware

import (
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/pawlog/pawlog/internal/logger"
	"github.com/pawlog/pawlog/internal/request"
)

// Audit emits warn-level events for the responses security monitoring
// cares about: rate limit rejections and server-side failures. Routine
// traffic is left to the request logging middleware.
func Audit(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newResponseRecorder(w)

			next.ServeHTTP(rec, r)

			var event string
			switch {
			case rec.status == http.StatusTooManyRequests:
				event = "rate_limit_violation"
			case rec.status >= http.StatusInternalServerError:
				event = "server_error"
			default:
				return
			}

			logger.Warn(event,
				zap.Int("status_code", rec.status),
				zap.String("method", r.Method),
				zap.String("path", logpkg.SanitizePath(r.URL.Path)),
				zap.String("ip", logpkg.SanitizeString(request.ClientIP(r), logpkg.MaxGeneralStringLength)),
			)
		})
	}
}
