package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
)

// HabitRepository owns a user's habit collection. The whole collection
// is the unit of persistence: every mutation rewrites the full list
// under the user's key, so a write either lands entirely or not at all.
type HabitRepository struct {
	store  kv.Store
	logger *zap.Logger
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(store kv.Store, logger *zap.Logger) *HabitRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HabitRepository{store: store, logger: logger}
}

func habitsKey(userID uuid.UUID) string {
	return fmt.Sprintf("dailydost_habits_%s", userID)
}

// CreateHabitParams carries the user-supplied fields of a new habit.
type CreateHabitParams struct {
	Title        string
	Category     models.Category
	Frequency    string
	ReminderTime string
}

// Load returns the persisted habit collection for userID. A missing
// key yields an empty collection. A stored value that fails to decode
// is treated as empty rather than surfaced: availability wins over
// reporting corruption, and the worst case is a fresh list.
func (r *HabitRepository) Load(ctx context.Context, userID uuid.UUID) ([]models.Habit, error) {
	raw, ok, err := r.store.Get(ctx, habitsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	if !ok {
		return []models.Habit{}, nil
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		r.logger.Warn("discarding_malformed_habit_collection",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return []models.Habit{}, nil
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return habits, nil
}

func (r *HabitRepository) persist(ctx context.Context, userID uuid.UUID, habits []models.Habit) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to encode habits: %w", err)
	}
	if err := r.store.Set(ctx, habitsKey(userID), string(data)); err != nil {
		return fmt.Errorf("failed to persist habits: %w", err)
	}
	return nil
}

// Create appends a new habit to the user's collection and persists it.
// New habits start with no streak, no history, today unmarked and the
// default momentum score.
func (r *HabitRepository) Create(ctx context.Context, userID uuid.UUID, params CreateHabitParams) (models.Habit, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return models.Habit{}, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	switch params.Category {
	case models.CategoryAcademic, models.CategoryHealth, models.CategoryPersonal:
	default:
		return models.Habit{}, fmt.Errorf("%w: unknown category %q", ErrValidation, params.Category)
	}

	habits, err := r.Load(ctx, userID)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:                nextHabitID(habits),
		Title:             title,
		Category:          params.Category,
		Frequency:         params.Frequency,
		ReminderTime:      params.ReminderTime,
		Streak:            0,
		Completed:         false,
		Progress:          models.DefaultProgress,
		CompletionHistory: models.History{},
	}

	habits = append(habits, habit)
	if err := r.persist(ctx, userID, habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// nextHabitID assigns an epoch-millisecond id, bumped past any
// existing id so two creates within the same millisecond cannot
// collide inside one user's collection.
func nextHabitID(habits []models.Habit) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for _, h := range habits {
			if h.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}

// ToggleCompletion flips the habit's completed flag for today.
// Marking done bumps the streak, sets the momentum score to 100 and
// records today as completed. Unmarking decays the score (floored at
// the default), leaves the streak alone and removes today's ledger
// entry: an unmark is treated as an input correction, not a failure.
func (r *HabitRepository) ToggleCompletion(ctx context.Context, userID uuid.UUID, habitID int64, today string) (models.Habit, error) {
	habits, err := r.Load(ctx, userID)
	if err != nil {
		return models.Habit{}, err
	}

	idx := habitIndex(habits, habitID)
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("%w: habit %d", ErrNotFound, habitID)
	}

	habit := habits[idx]
	habit.Completed = !habit.Completed
	if habit.Completed {
		habit.Streak++
		habit.Progress = 100
		habit.CompletionHistory = habit.CompletionHistory.Upsert(today, models.StatusCompleted)
	} else {
		habit.Progress = max(models.DefaultProgress, habit.Progress-10)
		habit.CompletionHistory = habit.CompletionHistory.Remove(today)
	}
	habits[idx] = habit

	if err := r.persist(ctx, userID, habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Skip records today as skipped without touching the completed flag,
// streak or momentum score.
func (r *HabitRepository) Skip(ctx context.Context, userID uuid.UUID, habitID int64, today string) (models.Habit, error) {
	habits, err := r.Load(ctx, userID)
	if err != nil {
		return models.Habit{}, err
	}

	idx := habitIndex(habits, habitID)
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("%w: habit %d", ErrNotFound, habitID)
	}

	habits[idx].CompletionHistory = habits[idx].CompletionHistory.Upsert(today, models.StatusSkipped)

	if err := r.persist(ctx, userID, habits); err != nil {
		return models.Habit{}, err
	}
	return habits[idx], nil
}

// Delete removes the habit and, with it, its entire history. The
// collection is the persistence unit so habit and ledger go together.
func (r *HabitRepository) Delete(ctx context.Context, userID uuid.UUID, habitID int64) error {
	habits, err := r.Load(ctx, userID)
	if err != nil {
		return err
	}

	idx := habitIndex(habits, habitID)
	if idx < 0 {
		return fmt.Errorf("%w: habit %d", ErrNotFound, habitID)
	}

	habits = append(habits[:idx], habits[idx+1:]...)
	return r.persist(ctx, userID, habits)
}

func habitIndex(habits []models.Habit, habitID int64) int {
	for i, h := range habits {
		if h.ID == habitID {
			return i
		}
	}
	return -1
}
