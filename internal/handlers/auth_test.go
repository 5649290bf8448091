package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
)

func newAuthRouter(e *testEnv) *mux.Router {
	router := mux.NewRouter()
	handler := NewAuthHandler(e.users, e.sessions)
	sub := router.PathPrefix("/auth").Subrouter()
	handler.RegisterPublicRoutes(sub)
	handler.RegisterProtectedRoutes(sub)
	return router
}

func TestSignupEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		validate   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "valid signup",
			body:       `{"name":"Asha","email":"asha@example.com","password":"hunter2"}`,
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var session models.Session
				decodeData(t, w, &session)

				if session.Token == "" {
					t.Error("Expected a session token")
				}
				if session.Name != "Asha" || session.Email != "asha@example.com" {
					t.Errorf("Expected session for Asha, got %+v", session)
				}
				if session.JoinDate.IsZero() {
					t.Error("Expected join date to be set")
				}
			},
		},
		{
			name:       "missing email",
			body:       `{"name":"Asha","password":"hunter2"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Asha","email":"not-an-email","password":"hunter2"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       `{"name":"Asha","email":"asha@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			w := httptest.NewRecorder()
			newAuthRouter(env).ServeHTTP(w, httptest.NewRequest("POST", "/auth/signup", strings.NewReader(tt.body)))

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestDuplicateSignup(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	router := newAuthRouter(env)
	body := `{"name":"Asha","email":"asha@example.com","password":"hunter2"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected first signup to succeed, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/auth/signup", strings.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate email, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	router := newAuthRouter(env)

	if _, err := env.users.Signup(context.Background(), "Asha", "asha@example.com", "hunter2"); err != nil {
		t.Fatalf("Failed to seed account: %v", err)
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid credentials", `{"email":"asha@example.com","password":"hunter2"}`, http.StatusOK},
		{"wrong password", `{"email":"asha@example.com","password":"wrong"}`, http.StatusUnauthorized},
		{"unknown account", `{"email":"nobody@example.com","password":"hunter2"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body)))
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	router := newAuthRouter(env)

	user, err := env.users.Signup(context.Background(), "Asha", "asha@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Failed to seed account: %v", err)
	}
	session, err := env.sessions.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req = req.WithContext(request.WithSession(req.Context(), &session))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d: %s", w.Code, w.Body.String())
	}

	if _, err := env.sessions.Get(context.Background(), session.Token); err == nil {
		t.Error("Expected session to be gone after logout")
	}
}

func TestGetMeEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	router := newAuthRouter(env)

	w := env.doRequest(router, httptest.NewRequest("GET", "/auth/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var session models.Session
	decodeData(t, w, &session)
	if session.UserID != env.session.UserID {
		t.Errorf("Expected session for user %s, got %s", env.session.UserID, session.UserID)
	}
}
