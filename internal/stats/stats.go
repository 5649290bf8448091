// Package stats derives display aggregates from a user's habit
// collection. Every function is pure: the reference date is an
// explicit parameter and nothing here reads the clock, so results are
// deterministic for a given input.
package stats

import (
	"math"
	"sort"

	"github.com/dailydost/dailydost/internal/models"
)

// DefaultTopStreaks is the leaderboard size when no limit is given.
const DefaultTopStreaks = 5

// StatusTotals is the all-time per-status tally across every habit.
type StatusTotals struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Total     int `json:"total"`
}

// Totals sums every history entry across every habit by status.
func Totals(habits []models.Habit) StatusTotals {
	var t StatusTotals
	for _, habit := range habits {
		for _, entry := range habit.CompletionHistory {
			switch entry.Status {
			case models.StatusCompleted:
				t.Completed++
			case models.StatusFailed:
				t.Failed++
			case models.StatusSkipped:
				t.Skipped++
			}
		}
	}
	t.Total = t.Completed + t.Failed + t.Skipped
	return t
}

// CompletionRate returns the percentage of history entries marked
// completed, rounded to the nearest integer. An empty ledger yields 0.
func CompletionRate(habits []models.Habit) int {
	t := Totals(habits)
	if t.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(t.Completed) / float64(t.Total)))
}

// TopStreaks returns up to n habits ordered by streak descending.
// Ties keep their original collection order.
func TopStreaks(habits []models.Habit, n int) []models.Habit {
	if n <= 0 {
		n = DefaultTopStreaks
	}
	top := make([]models.Habit, len(habits))
	copy(top, habits)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Streak > top[j].Streak
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// YearlySummary is the yearly tab of the progress view: total
// completions and the per-month average.
type YearlySummary struct {
	Completed      int     `json:"completed"`
	MonthlyAverage float64 `json:"monthlyAverage"`
}

// Yearly summarizes all-time completions as a yearly figure.
func Yearly(habits []models.Habit) YearlySummary {
	completed := Totals(habits).Completed
	return YearlySummary{
		Completed:      completed,
		MonthlyAverage: float64(completed) / 12,
	}
}
