package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dailydost/dailydost/internal/config"
	"github.com/dailydost/dailydost/internal/kv"
	"github.com/dailydost/dailydost/internal/models"
	"github.com/dailydost/dailydost/internal/store"
)

// openStore connects to the configured Redis instance. Callers must
// Close the returned store.
func openStore(ctx context.Context) (*kv.Redis, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	kvStore, err := kv.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return kvStore, nil
}

// resolveUser finds an account by email or ID string.
func resolveUser(ctx context.Context, kvStore *kv.Redis, identifier string) (models.User, error) {
	users, err := store.NewUserRepository(kvStore, zap.NewNop()).List(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, identifier) || u.ID.String() == identifier {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("no user with email or ID %q", identifier)
}
