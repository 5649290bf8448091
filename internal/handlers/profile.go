package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/stats"
	"github.com/dailydost/dailydost/internal/store"
)

// ProfileHandler serves the profile page summary
type ProfileHandler struct {
	habits *store.HabitRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(habits *store.HabitRepository) *ProfileHandler {
	return &ProfileHandler{habits: habits}
}

// RegisterRoutes registers profile routes on the given router
func (h *ProfileHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.GetProfile).Methods("GET")
}

// ProfileResponse is the account summary with habit stats
type ProfileResponse struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	JoinDate       time.Time `json:"joinDate"`
	TotalHabits    int       `json:"totalHabits"`
	CompletionRate int       `json:"completionRate"`
}

// GetProfile returns the caller's account info and headline stats
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	habits, err := h.habits.Load(r.Context(), session.UserID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		Name:           session.Name,
		Email:          session.Email,
		JoinDate:       session.JoinDate,
		TotalHabits:    len(habits),
		CompletionRate: stats.CompletionRate(habits),
	})
}
