package request

import (
	"context"
	"net/http"
	"strings"

	"github.com/dailydost/dailydost/internal/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

// ClientIP extracts the client IP from the request, respecting X-Forwarded-For and X-Real-IP.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return r.RemoteAddr
}

// WithSession returns a context with the session attached.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the session from the request context, or nil if missing or wrong type.
func SessionFromContext(r *http.Request) *models.Session {
	s, _ := r.Context().Value(sessionContextKey).(*models.Session)
	return s
}
