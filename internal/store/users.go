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

const usersKey = "dailydost_users"

// UserRepository is the mock credential store: a single JSON list of
// signup records in the key-value store. Passwords are compared as
// stored; there is deliberately no hashing or session hardening here.
type UserRepository struct {
	store  kv.Store
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(store kv.Store, logger *zap.Logger) *UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRepository{store: store, logger: logger}
}

func (r *UserRepository) load(ctx context.Context) ([]models.Credential, error) {
	raw, ok, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !ok {
		return []models.Credential{}, nil
	}

	var creds []models.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		r.logger.Warn("discarding_malformed_user_list", zap.Error(err))
		return []models.Credential{}, nil
	}
	return creds, nil
}

func (r *UserRepository) persist(ctx context.Context, creds []models.Credential) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

// Signup registers a new account and returns the user. Emails are
// unique; a duplicate yields ErrDuplicateEmail.
func (r *UserRepository) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	creds, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, c := range creds {
		if c.Email == email {
			return models.User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
	}

	cred := models.Credential{
		User: models.User{
			ID:       uuid.New(),
			Name:     name,
			Email:    email,
			JoinDate: time.Now().UTC(),
		},
		Password: password,
	}

	creds = append(creds, cred)
	if err := r.persist(ctx, creds); err != nil {
		return models.User{}, err
	}
	return cred.User, nil
}

// Login returns the user whose credential record matches the
// email/password pair, or ErrInvalidCredentials.
func (r *UserRepository) Login(ctx context.Context, email, password string) (models.User, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, c := range creds {
		if c.Email == email && c.Password == password {
			return c.User, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// List returns every registered user without credentials. Used by the
// admin CLI.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(creds))
	for _, c := range creds {
		users = append(users, c.User)
	}
	return users, nil
}
