package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// ProductStore implements driven.ProductStore over either engine.
type ProductStore struct {
	engine driven.Engine
}

var _ driven.ProductStore = (*ProductStore)(nil)

// NewProductStore creates a product store backed by engine.
func NewProductStore(engine driven.Engine) *ProductStore {
	return &ProductStore{engine: engine}
}

const productColumns = "id, name, price, stock, created_at, updated_at"

// List returns all products ordered by name ascending.
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT " + productColumns + " FROM products ORDER BY name ASC")
		if err != nil {
			return fmt.Errorf("querying products: %w", err)
		}
		products, err = scanProducts(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Get retrieves a product by ID.
func (s *ProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	var product *domain.Product
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT "+productColumns+" FROM products WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("querying product: %w", err)
		}
		found, err := scanProducts(rows)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return domain.ErrNotFound
		}
		product = &found[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Search returns products whose name contains query as a substring,
// ordered by name. SQLite's LIKE is case-insensitive for ASCII, which
// covers the catalogue's naming in practice.
func (s *ProductStore) Search(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query(
			"SELECT "+productColumns+" FROM products WHERE name LIKE ? ESCAPE '\\' ORDER BY name ASC",
			"%"+escapeLike(query)+"%",
		)
		if err != nil {
			return fmt.Errorf("searching products: %w", err)
		}
		products, err = scanProducts(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product.
func (s *ProductStore) Create(ctx context.Context, product domain.Product) error {
	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO products ("+productColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			product.ID, product.Name, product.Price, product.Stock,
			product.CreatedAt, product.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting product: %w", err)
		}
		return nil
	})
}

// Update rewrites only the fields set in update, plus updated_at. An
// empty update succeeds without touching the database.
func (s *ProductStore) Update(ctx context.Context, id string, update domain.ProductUpdate, updatedAt int64) error {
	if update.IsEmpty() {
		return nil
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *update.Price)
	}
	if update.Stock != nil {
		sets = append(sets, "stock = ?")
		args = append(args, *update.Stock)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		affected, err := tx.Exec(
			"UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		)
		if err != nil {
			return fmt.Errorf("updating product: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete removes a product unless a sale line item references it. The
// reference count and the delete run in the same transaction so a sale
// created concurrently cannot slip between the check and the act.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query("SELECT COUNT(*) FROM transaction_items WHERE product_id = ?", id)
		if err != nil {
			return fmt.Errorf("counting references: %w", err)
		}
		var count int64
		if rows.Next() {
			if err := rows.Scan(&count); err != nil {
				rows.Close()
				return fmt.Errorf("scanning reference count: %w", err)
			}
		}
		if err := rows.Close(); err != nil {
			return fmt.Errorf("closing reference count: %w", err)
		}

		if count > 0 {
			return domain.ErrProductInUse
		}

		affected, err := tx.Exec("DELETE FROM products WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting product: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// AdjustStock adds delta to the product's stock. Stock may go negative:
// overselling is allowed by policy and callers enforce any floor.
func (s *ProductStore) AdjustStock(ctx context.Context, id string, delta int64, updatedAt int64) error {
	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		affected, err := tx.Exec(
			"UPDATE products SET stock = stock + ?, updated_at = ? WHERE id = ?",
			delta, updatedAt, id,
		)
		if err != nil {
			return fmt.Errorf("adjusting stock: %w", err)
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// scanProducts drains rows into products and closes them.
func scanProducts(rows driven.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

// escapeLike neutralizes LIKE wildcards in user input so a literal "%"
// in a product name can still be searched for.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
