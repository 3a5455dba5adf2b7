// Package request has helpers for reading client-supplied request
// metadata.
package request

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the originating client address, used to key the rate
// limiter and tag audit logs. Proxy headers win over the socket
// address: the first X-Forwarded-For entry, then X-Real-IP, then
// RemoteAddr with the port stripped so one client maps to one key
// across connections.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
