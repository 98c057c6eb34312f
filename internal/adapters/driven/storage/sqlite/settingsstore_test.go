package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

func TestSettingsStore_GetSeeded(t *testing.T) {
	engine, _ := setupEngine(t)
	store := NewSettingsStore(engine)

	value, err := store.Get(context.Background(), domain.SettingStoreName)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStoreName, value)
}

func TestSettingsStore_GetNotFound(t *testing.T) {
	engine, _ := setupEngine(t)
	store := NewSettingsStore(engine)

	_, err := store.Get(context.Background(), "receipt_footer")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsStore_SetUpserts(t *testing.T) {
	engine, _ := setupEngine(t)
	store := NewSettingsStore(engine)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.SettingStoreName, "Warung Maju"))
	require.NoError(t, store.Set(ctx, "receipt_footer", "Terima kasih"))

	value, err := store.Get(ctx, domain.SettingStoreName)
	require.NoError(t, err)
	assert.Equal(t, "Warung Maju", value)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		domain.SettingStoreName: "Warung Maju",
		"receipt_footer":        "Terima kasih",
	}, all)
}
