package request

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/dailydost/dailydost/internal/models"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	session := &models.Session{
		Token:  "tok",
		UserID: uuid.New(),
		Email:  "asha@example.com",
	}

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithSession(req.Context(), session))

	got := SessionFromContext(req)
	if got == nil {
		t.Fatal("Expected session, got nil")
	}
	if got.UserID != session.UserID {
		t.Errorf("Expected user ID %s, got %s", session.UserID, got.UserID)
	}
}

func TestSessionFromContextMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	if got := SessionFromContext(req); got != nil {
		t.Errorf("Expected nil session, got %+v", got)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"X-Forwarded-For single", map[string]string{"X-Forwarded-For": "203.0.113.5"}, "10.0.0.1:1234", "203.0.113.5"},
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"}, "10.0.0.1:1234", "203.0.113.5"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.9"}, "10.0.0.1:1234", "203.0.113.9"},
		{"remote addr fallback", nil, "10.0.0.1:1234", "10.0.0.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
