package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/dailydost/dailydost/internal/logger"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
)

// Auth creates authentication middleware that resolves the Bearer
// session token to a Session and attaches it to the request context.
// No operation behind this middleware is reachable without a user
// identity.
func Auth(sessions *store.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondAuthError(w, "Missing Authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondAuthError(w, "Invalid Authorization header format")
				return
			}

			session, err := sessions.Get(r.Context(), parts[1])
			if err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					logger.Error("session_lookup_failed",
						zap.String("path", logpkg.SanitizePath(r.URL.Path)),
						zap.Error(err),
					)
				}
				respondAuthError(w, "Invalid or expired session")
				return
			}

			ctx := request.WithSession(r.Context(), &session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":   false,
		"error":     "Unauthorized",
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
