package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
)

func TestNotesNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewNoteRepository(kv.NewMemory(), nil)
	userID := uuid.New()

	first, err := repo.Create(ctx, userID, "First", "content", models.NoteReflection)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := repo.Create(ctx, userID, "Second", "content", models.NoteChallenge)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	notes, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Errorf("expected newest first, got %v", notes)
	}
}

func TestNoteValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewNoteRepository(kv.NewMemory(), nil)
	userID := uuid.New()

	if _, err := repo.Create(ctx, userID, "", "content", models.NoteMistake); !errors.Is(err, ErrValidation) {
		t.Errorf("empty title: expected ErrValidation, got %v", err)
	}
	if _, err := repo.Create(ctx, userID, "Title", "  ", models.NoteMistake); !errors.Is(err, ErrValidation) {
		t.Errorf("empty content: expected ErrValidation, got %v", err)
	}
	if _, err := repo.Create(ctx, userID, "Title", "content", "rant"); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown category: expected ErrValidation, got %v", err)
	}
}

func TestNoteDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewNoteRepository(kv.NewMemory(), nil)
	userID := uuid.New()

	note, err := repo.Create(ctx, userID, "Title", "content", models.NoteReflection)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, userID, note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	notes, _ := repo.Load(ctx, userID)
	if len(notes) != 0 {
		t.Errorf("expected no notes after delete, got %v", notes)
	}

	if err := repo.Delete(ctx, userID, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing note, got %v", err)
	}
}
