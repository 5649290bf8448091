package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	mem := kv.NewMemory()
	sessions := store.NewSessionRepository(mem)

	session, err := sessions.Create(context.Background(), models.User{
		Name:  "Asha",
		Email: "asha@example.com",
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var captured *models.Session
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = request.SessionFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
	middleware := Auth(sessions, zap.NewNop())(handler)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantIdent  bool
	}{
		{"valid token", "Bearer " + session.Token, http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"malformed header", "Basic abc123", http.StatusUnauthorized, false},
		{"unknown token", "Bearer not-a-session", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil

			req := httptest.NewRequest("GET", "/api/v1/habits", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			middleware.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantIdent {
				if captured == nil {
					t.Fatal("Expected session in handler context")
				}
				if captured.Email != "asha@example.com" {
					t.Errorf("Expected session for asha@example.com, got %q", captured.Email)
				}
			} else if captured != nil {
				t.Error("Expected handler not to be reached")
			}
		})
	}
}
