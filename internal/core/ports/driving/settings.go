package driving

import "context"

// SettingsService manages application settings.
type SettingsService interface {
	// StoreName returns the configured shop name.
	StoreName(ctx context.Context) (string, error)

	// SetStoreName updates the shop name.
	SetStoreName(ctx context.Context, name string) error

	// Get returns the value stored under key, domain.ErrNotFound when
	// absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
}
