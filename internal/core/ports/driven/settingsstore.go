package driven

import "context"

// SettingsStore persists key/value settings.
type SettingsStore interface {
	// Get returns the value stored under key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// All returns every stored key/value pair.
	All(ctx context.Context) (map[string]string, error)
}
