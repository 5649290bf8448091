package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/request"
	"github.com/dailydost/dailydost/internal/stats"
	"github.com/dailydost/dailydost/internal/store"
)

// StatsHandler serves the progress-view aggregates. All endpoints are
// read-only over the habit collection.
type StatsHandler struct {
	habits *store.HabitRepository
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(habits *store.HabitRepository) *StatsHandler {
	return &StatsHandler{habits: habits}
}

// RegisterRoutes registers stats routes on the given router.
// The router should already have the /stats prefix.
func (h *StatsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/overview", h.Overview).Methods("GET")
	r.HandleFunc("/daily", h.Daily).Methods("GET")
	r.HandleFunc("/weekly", h.Weekly).Methods("GET")
	r.HandleFunc("/monthly", h.Monthly).Methods("GET")
	r.HandleFunc("/streaks", h.Streaks).Methods("GET")
}

// OverviewResponse bundles the headline numbers of the progress page
type OverviewResponse struct {
	Totals         stats.StatusTotals  `json:"totals"`
	CompletionRate int                 `json:"completionRate"`
	Yearly         stats.YearlySummary `json:"yearly"`
}

// SeriesResponse is one chart window plus its completed-per-bucket average
type SeriesResponse struct {
	Buckets []stats.Bucket `json:"buckets"`
	Average float64        `json:"average"`
}

func (h *StatsHandler) loadHabits(w http.ResponseWriter, r *http.Request) ([]models.Habit, bool) {
	session := request.SessionFromContext(r)
	if session == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "Session not found in context")
		return nil, false
	}

	habits, err := h.habits.Load(r.Context(), session.UserID)
	if err != nil {
		respondStoreError(w, err)
		return nil, false
	}
	return habits, true
}

// referenceDate reads the optional ?date=YYYY-MM-DD query parameter,
// defaulting to the current UTC date. The aggregator itself never
// touches the clock.
func referenceDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	ref, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid date: expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return ref, true
}

// Overview returns totals, completion rate and the yearly summary
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, OverviewResponse{
		Totals:         stats.Totals(habits),
		CompletionRate: stats.CompletionRate(habits),
		Yearly:         stats.Yearly(habits),
	})
}

// Daily returns the 7-day chart window
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}
	ref, ok := referenceDate(w, r)
	if !ok {
		return
	}

	buckets := stats.DailySeries(habits, ref)
	respondJSON(w, http.StatusOK, SeriesResponse{
		Buckets: buckets,
		Average: stats.CompletedAverage(buckets),
	})
}

// Weekly returns the 4-week chart window
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}
	ref, ok := referenceDate(w, r)
	if !ok {
		return
	}

	buckets := stats.WeeklySeries(habits, ref)
	respondJSON(w, http.StatusOK, SeriesResponse{
		Buckets: buckets,
		Average: stats.CompletedAverage(buckets),
	})
}

// Monthly returns the 6-month chart window
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}
	ref, ok := referenceDate(w, r)
	if !ok {
		return
	}

	buckets := stats.MonthlySeries(habits, ref)
	respondJSON(w, http.StatusOK, SeriesResponse{
		Buckets: buckets,
		Average: stats.CompletedAverage(buckets),
	})
}

// Streaks returns the streak leaderboard
func (h *StatsHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	habits, ok := h.loadHabits(w, r)
	if !ok {
		return
	}

	limit := stats.DefaultTopStreaks
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid limit: expected a positive integer")
			return
		}
		limit = parsed
	}

	respondJSON(w, http.StatusOK, stats.TopStreaks(habits, limit))
}
