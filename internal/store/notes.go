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

// NoteRepository stores a user's learning notes, newest first, under
// one key per user.
type NoteRepository struct {
	store  kv.Store
	logger *zap.Logger
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(store kv.Store, logger *zap.Logger) *NoteRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteRepository{store: store, logger: logger}
}

func notesKey(userID uuid.UUID) string {
	return fmt.Sprintf("dailydost_notes_%s", userID)
}

// Load returns the user's notes, newest first. Missing or malformed
// data yields an empty list.
func (r *NoteRepository) Load(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	raw, ok, err := r.store.Get(ctx, notesKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if !ok {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		r.logger.Warn("discarding_malformed_note_list",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return []models.Note{}, nil
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (r *NoteRepository) persist(ctx context.Context, userID uuid.UUID, notes []models.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := r.store.Set(ctx, notesKey(userID), string(data)); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// Create prepends a new note and persists the list.
func (r *NoteRepository) Create(ctx context.Context, userID uuid.UUID, title, content string, category models.NoteCategory) (models.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return models.Note{}, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	switch category {
	case models.NoteChallenge, models.NoteMistake, models.NoteReflection:
	default:
		return models.Note{}, fmt.Errorf("%w: unknown note category %q", ErrValidation, category)
	}

	notes, err := r.Load(ctx, userID)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:       time.Now().UnixMilli(),
		Title:    title,
		Content:  content,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Category: category,
	}

	notes = append([]models.Note{note}, notes...)
	if err := r.persist(ctx, userID, notes); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Delete removes a note by id.
func (r *NoteRepository) Delete(ctx context.Context, userID uuid.UUID, noteID int64) error {
	notes, err := r.Load(ctx, userID)
	if err != nil {
		return err
	}

	for i, n := range notes {
		if n.ID == noteID {
			notes = append(notes[:i], notes[i+1:]...)
			return r.persist(ctx, userID, notes)
		}
	}
	return fmt.Errorf("%w: note %d", ErrNotFound, noteID)
}
