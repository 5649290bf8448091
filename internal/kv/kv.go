// Package kv abstracts the key-value persistence collaborator. Habit
// collections, credentials, sessions and notes are all stored as JSON
// strings under deterministic keys, so the only contract the rest of
// the application needs is get/set/delete on string values.
package kv

import "context"

// Store is a synchronous string key-value store. Get reports whether
// the key existed; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
