package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/memory"
	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/sqlite"
	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// setupStores brings up an initialized snapshot engine and the three
// repositories over it.
func setupStores(t *testing.T) (driven.ProductStore, driven.SaleStore, driven.SettingsStore) {
	t.Helper()

	engine, err := sqlite.NewSnapshotEngine("kasir-test", memory.NewSnapshotStore())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, engine.Close()) })
	require.NoError(t, sqlite.InitSchema(context.Background(), engine))

	return sqlite.NewProductStore(engine), sqlite.NewSaleStore(engine), sqlite.NewSettingsStore(engine)
}

func TestCatalogService_Create(t *testing.T) {
	products, _, _ := setupStores(t)
	svc := NewCatalogService(products)
	ctx := context.Background()

	before := time.Now().Unix()
	id, err := svc.Create(ctx, "Mie Instan", 3500, 42)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "generated IDs are UUIDs")

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mie Instan", got.Name)
	assert.Equal(t, 3500.0, got.Price)
	assert.Equal(t, int64(42), got.Stock)
	assert.GreaterOrEqual(t, got.CreatedAt, before)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestCatalogService_CreateDistinctIDs(t *testing.T) {
	products, _, _ := setupStores(t)
	svc := NewCatalogService(products)
	ctx := context.Background()

	// Back-to-back creation must never collide.
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := svc.Create(ctx, "Kopi", 1500, 1)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCatalogService_UpdateStampsTime(t *testing.T) {
	products, _, _ := setupStores(t)
	svc := NewCatalogService(products)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Mie Instan", 3500, 42)
	require.NoError(t, err)

	name := "Mie Goreng"
	require.NoError(t, svc.Update(ctx, id, domain.ProductUpdate{Name: &name}))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mie Goreng", got.Name)
	assert.GreaterOrEqual(t, got.UpdatedAt, got.CreatedAt)
}

func TestCatalogService_AdjustStock(t *testing.T) {
	products, _, _ := setupStores(t)
	svc := NewCatalogService(products)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Mie Instan", 3500, 10)
	require.NoError(t, err)

	require.NoError(t, svc.AdjustStock(ctx, id, -4))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Stock)
}

func TestCatalogService_DeleteReferenced(t *testing.T) {
	products, sales, _ := setupStores(t)
	catalog := NewCatalogService(products)
	checkout := NewSalesService(sales)
	ctx := context.Background()

	id, err := catalog.Create(ctx, "Mie Instan", 3500, 10)
	require.NoError(t, err)

	_, err = checkout.Checkout(ctx, 3500, 5000, 1500, []domain.CartLine{
		{ProductID: id, Quantity: 1, Price: 3500},
	})
	require.NoError(t, err)

	err = catalog.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrProductInUse)
}
