package driven

import (
	"context"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

// ProductStore persists the product catalogue.
type ProductStore interface {
	// List returns all products ordered by name ascending.
	List(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by ID. Returns domain.ErrNotFound when
	// it does not exist.
	Get(ctx context.Context, id string) (*domain.Product, error)

	// Search returns products whose name contains the query as a
	// substring, ordered by name ascending.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product domain.Product) error

	// Update rewrites only the fields set in update, stamping
	// updated_at. An empty update is a no-op that still succeeds.
	Update(ctx context.Context, id string, update domain.ProductUpdate, updatedAt int64) error

	// Delete removes a product. Returns domain.ErrProductInUse when a
	// sale line item references it, domain.ErrNotFound when it does
	// not exist. The reference check and the delete run in one
	// transaction.
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically adds delta (which may be negative) to the
	// product's stock and stamps updated_at. No floor is enforced.
	AdjustStock(ctx context.Context, id string, delta int64, updatedAt int64) error
}
