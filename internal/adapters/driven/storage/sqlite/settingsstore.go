package sqlite

import (
	"context"
	"fmt"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// SettingsStore implements driven.SettingsStore over either engine.
type SettingsStore struct {
	engine driven.Engine
}

var _ driven.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a settings store backed by engine.
func NewSettingsStore(engine driven.Engine) *SettingsStore {
	return &SettingsStore{engine: engine}
}

// Get returns the value stored under key.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT value FROM settings WHERE key = ?", key)
		if err != nil {
			return fmt.Errorf("querying setting: %w", err)
		}
		defer rows.Close()

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return fmt.Errorf("querying setting: %w", err)
			}
			return domain.ErrNotFound
		}
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("scanning setting: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return fmt.Errorf("saving setting: %w", err)
		}
		return nil
	})
}

// All returns every stored key/value pair.
func (s *SettingsStore) All(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string)
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT key, value FROM settings ORDER BY key")
		if err != nil {
			return fmt.Errorf("querying settings: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				return fmt.Errorf("scanning setting: %w", err)
			}
			settings[key] = value
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}
