package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/memory"
	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// setupEngine creates an initialized snapshot engine over an in-memory
// snapshot store.
func setupEngine(t *testing.T) (*Engine, *memory.SnapshotStore) {
	t.Helper()

	snapshots := memory.NewSnapshotStore()
	engine, err := NewSnapshotEngine("kasir-test", snapshots)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, engine.Close()) })

	require.NoError(t, InitSchema(context.Background(), engine))
	return engine, snapshots
}

// insertProduct writes a product row directly through the engine.
func insertProduct(t *testing.T, engine driven.Engine, id, name string, price float64, stock int64) {
	t.Helper()

	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO products (id, name, price, stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, name, price, stock, int64(1000), int64(1000),
		)
		return err
	})
	require.NoError(t, err)
}

// productStock reads one product's stock.
func productStock(t *testing.T, engine driven.Engine, id string) int64 {
	t.Helper()

	var stock int64
	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT stock FROM products WHERE id = ?", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		require.True(t, rows.Next())
		return rows.Scan(&stock)
	})
	require.NoError(t, err)
	return stock
}

func countRows(t *testing.T, engine driven.Engine, table string) int64 {
	t.Helper()

	var count int64
	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT COUNT(*) FROM " + table)
		if err != nil {
			return err
		}
		defer rows.Close()
		require.True(t, rows.Next())
		return rows.Scan(&count)
	})
	require.NoError(t, err)
	return count
}

func TestRunTransaction_Commit(t *testing.T) {
	engine, _ := setupEngine(t)

	insertProduct(t, engine, "p1", "Kopi", 5000, 10)

	assert.Equal(t, int64(1), countRows(t, engine, "products"))
}

func TestRunTransaction_RollbackOnError(t *testing.T) {
	engine, _ := setupEngine(t)

	boom := errors.New("boom")
	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		_, execErr := tx.Exec(
			"INSERT INTO products (id, name, price, stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			"p1", "Kopi", 5000.0, int64(10), int64(1000), int64(1000),
		)
		require.NoError(t, execErr)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countRows(t, engine, "products"))
}

func TestRunTransaction_StatementErrorObservable(t *testing.T) {
	engine, _ := setupEngine(t)

	// A failed statement reports through its own return value; the
	// body decides whether the transaction survives.
	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		if _, err := tx.Exec("INSERT INTO no_such_table (x) VALUES (1)"); err == nil {
			return errors.New("expected statement error")
		}
		_, err := tx.Exec(
			"INSERT INTO products (id, name, price, stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			"p1", "Kopi", 5000.0, int64(10), int64(1000), int64(1000),
		)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, engine, "products"))
}

func TestRunTransaction_AfterClose(t *testing.T) {
	snapshots := memory.NewSnapshotStore()
	engine, err := NewSnapshotEngine("kasir-test", snapshots)
	require.NoError(t, err)

	require.NoError(t, engine.Close())
	require.NoError(t, engine.Close(), "closing twice is a no-op")

	err = engine.RunTransaction(context.Background(), func(driven.Tx) error { return nil })
	assert.ErrorIs(t, err, domain.ErrEngineClosed)
}

func TestRunTransaction_SerializesBodies(t *testing.T) {
	engine, _ := setupEngine(t)
	insertProduct(t, engine, "p1", "Kopi", 5000, 0)

	// Read-modify-write from many goroutines loses updates unless
	// transaction bodies are serialized.
	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
				rows, err := tx.Query("SELECT stock FROM products WHERE id = ?", "p1")
				if err != nil {
					return err
				}
				var stock int64
				if rows.Next() {
					if err := rows.Scan(&stock); err != nil {
						rows.Close()
						return err
					}
				}
				if err := rows.Close(); err != nil {
					return err
				}
				_, err = tx.Exec("UPDATE products SET stock = ? WHERE id = ?", stock+1, "p1")
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), productStock(t, engine, "p1"))
}

func TestFileEngine_PersistsAcrossReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "kasir-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	engine, err := NewFileEngine(dir, "kasir")
	require.NoError(t, err)
	require.NoError(t, InitSchema(context.Background(), engine))
	insertProduct(t, engine, "p1", "Teh Botol", 3500, 24)
	require.NoError(t, engine.Close())

	reopened, err := NewFileEngine(dir, "kasir")
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, int64(24), productStock(t, reopened, "p1"))
	assert.FileExists(t, reopened.Path())
}

func TestFileEngine_ForeignKeysEnforced(t *testing.T) {
	dir, err := os.MkdirTemp("", "kasir-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	engine, err := NewFileEngine(dir, "kasir")
	require.NoError(t, err)
	defer engine.Close()
	require.NoError(t, InitSchema(context.Background(), engine))

	err = engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO transaction_items (id, transaction_id, product_id, quantity, price, subtotal) VALUES (?, ?, ?, ?, ?, ?)",
			"i1", "missing-sale", "missing-product", int64(1), 5000.0, 5000.0,
		)
		return err
	})
	assert.Error(t, err)
}

func TestSnapshotEngine_ForeignKeysEnforced(t *testing.T) {
	engine, _ := setupEngine(t)

	err := engine.RunTransaction(context.Background(), func(tx driven.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO transaction_items (id, transaction_id, product_id, quantity, price, subtotal) VALUES (?, ?, ?, ?, ?, ?)",
			"i1", "missing-sale", "missing-product", int64(1), 5000.0, 5000.0,
		)
		return err
	})
	assert.Error(t, err)
}

// seedProducts inserts n products with generated names, for tests that
// need some bulk.
func seedProducts(t *testing.T, engine driven.Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		insertProduct(t, engine, fmt.Sprintf("p%03d", i), fmt.Sprintf("Product %03d", i), 1000, 10)
	}
}
