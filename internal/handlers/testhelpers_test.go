package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
)

// testEnv bundles the in-memory repositories the handler tests run against.
type testEnv struct {
	store    *kv.Memory
	habits   *store.HabitRepository
	users    *store.UserRepository
	sessions *store.SessionRepository
	notes    *store.NoteRepository
	session  *models.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := kv.NewMemory()
	logger := zap.NewNop()

	return &testEnv{
		store:    mem,
		habits:   store.NewHabitRepository(mem, logger),
		users:    store.NewUserRepository(mem, logger),
		sessions: store.NewSessionRepository(mem),
		notes:    store.NewNoteRepository(mem, logger),
		session: &models.Session{
			Token:     uuid.NewString(),
			UserID:    uuid.New(),
			Name:      "Test User",
			Email:     "test@example.com",
			JoinDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Now().UTC(),
		},
	}
}

// doRequest runs req through the router with the test session attached,
// the way the auth middleware would attach it in production.
func (e *testEnv) doRequest(router *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	req = req.WithContext(request.WithSession(req.Context(), e.session))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the response envelope into dst.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("Expected success envelope, got %s", w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		t.Fatalf("Failed to decode response data: %v", err)
	}
}

func createTestHabit(t *testing.T, e *testEnv, title string) models.Habit {
	t.Helper()

	habit, err := e.habits.Create(context.Background(), e.session.UserID, store.CreateHabitParams{
		Title:     title,
		Category:  models.CategoryHealth,
		Frequency: "Daily",
	})
	if err != nil {
		t.Fatalf("Failed to create habit: %v", err)
	}
	return habit
}
