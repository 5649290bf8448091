package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
)

// SessionRepository keeps one record per live session, keyed by the
// opaque token handed to the client at login.
type SessionRepository struct {
	store kv.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func sessionKey(token string) string {
	return fmt.Sprintf("dailydost_session_%s", token)
}

// Create mints a session for user and persists it.
func (r *SessionRepository) Create(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		JoinDate:  user.JoinDate,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey(session.Token), string(data)); err != nil {
		return models.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return session, nil
}

// Get resolves a token to its session. Unknown or corrupted tokens
// yield ErrNotFound.
func (r *SessionRepository) Get(ctx context.Context, token string) (models.Session, error) {
	raw, ok, err := r.store.Get(ctx, sessionKey(token))
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return models.Session{}, fmt.Errorf("%w: session", ErrNotFound)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: session", ErrNotFound)
	}
	return session, nil
}

// Delete ends a session. Deleting an unknown token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.store.Delete(ctx, sessionKey(token))
}
