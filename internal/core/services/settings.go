package services

import (
	"context"
	"errors"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
	"github.com/koncoweb/kasir-go/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	settings driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settings driven.SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// StoreName returns the configured shop name, falling back to the
// seeded default if the row has somehow gone missing.
func (s *SettingsService) StoreName(ctx context.Context) (string, error) {
	name, err := s.settings.Get(ctx, domain.SettingStoreName)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultStoreName, nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// SetStoreName updates the shop name.
func (s *SettingsService) SetStoreName(ctx context.Context, name string) error {
	return s.settings.Set(ctx, domain.SettingStoreName, name)
}

// Get returns the value stored under key.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	return s.settings.Get(ctx, key)
}

// Set stores value under key.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	return s.settings.Set(ctx, key, value)
}
