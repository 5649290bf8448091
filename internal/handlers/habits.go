package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/store"
	"github.com/dailydost/dailydost/internal/validation"
)

// HabitHandler handles habit-related requests
type HabitHandler struct {
	habits *store.HabitRepository
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habits *store.HabitRepository) *HabitHandler {
	return &HabitHandler{habits: habits}
}

// RegisterRoutes registers habit routes on the given router.
// The router should already have the /habits prefix.
func (h *HabitHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListHabits).Methods("GET")
	r.HandleFunc("", h.CreateHabit).Methods("POST")
	r.HandleFunc("/{id}/toggle", h.ToggleCompletion).Methods("POST")
	r.HandleFunc("/{id}/skip", h.SkipHabit).Methods("POST")
	r.HandleFunc("/{id}", h.DeleteHabit).Methods("DELETE")
}

const (
	// MaxHabitTitleLength is the maximum length for habit titles
	MaxHabitTitleLength = 200
)

// CreateHabitRequest represents a create habit request
type CreateHabitRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required,habit_category"`
	Frequency    string `json:"frequency" validate:"required,max=200"`
	ReminderTime string `json:"reminderTime,omitempty" validate:"omitempty,max=20"`
}

// mutateDateRequest carries the optional explicit date of a toggle or
// skip. When absent the server's current UTC date is used, keeping the
// store itself free of clock reads.
type mutateDateRequest struct {
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ListHabits lists the authenticated user's habit collection
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
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

	respondJSON(w, http.StatusOK, habits)
}

// CreateHabit creates a new habit
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	var req CreateHabitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	title := validation.SanitizeText(req.Title)
	if title == "" {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Title is required and cannot be empty after sanitization")
		return
	}
	if len(title) > MaxHabitTitleLength {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Title exceeds maximum length of %d characters", MaxHabitTitleLength))
		return
	}

	habit, err := h.habits.Create(r.Context(), session.UserID, store.CreateHabitParams{
		Title:        title,
		Category:     models.Category(req.Category),
		Frequency:    req.Frequency,
		ReminderTime: req.ReminderTime,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, habit)
}

// ToggleCompletion flips a habit's completed flag for the day
func (h *HabitHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	habitID, ok := habitIDFromPath(w, r)
	if !ok {
		return
	}
	day, ok := mutationDate(w, r)
	if !ok {
		return
	}

	habit, err := h.habits.ToggleCompletion(r.Context(), session.UserID, habitID, day)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

// SkipHabit records the day as skipped for a habit
func (h *HabitHandler) SkipHabit(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	habitID, ok := habitIDFromPath(w, r)
	if !ok {
		return
	}
	day, ok := mutationDate(w, r)
	if !ok {
		return
	}

	habit, err := h.habits.Skip(r.Context(), session.UserID, habitID, day)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, habit)
}

// DeleteHabit removes a habit and its history
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return
	}

	habitID, ok := habitIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.habits.Delete(r.Context(), session.UserID, habitID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func habitIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid habit ID")
		return 0, false
	}
	return id, true
}

// mutationDate resolves the calendar date a toggle/skip applies to.
// Toggle and skip have no required body, so an empty body is fine.
func mutationDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req mutateDateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeAndValidate(w, r, &req) {
			return "", false
		}
	}
	if req.Date != "" {
		return req.Date, true
	}
	return time.Now().UTC().Format("2006-01-02"), true
}
