package driving

import (
	"context"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

// CatalogService manages the product catalogue for external actors.
type CatalogService interface {
	// List returns all products ordered by name.
	List(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by ID, domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Product, error)

	// Search finds products by name substring, case-insensitively.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// Create records a new product and returns its generated ID.
	Create(ctx context.Context, name string, price float64, stock int64) (string, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id string, update domain.ProductUpdate) error

	// Delete removes a product unless a sale references it.
	Delete(ctx context.Context, id string) error

	// AdjustStock adds delta to the product's stock count.
	AdjustStock(ctx context.Context, id string, delta int64) error
}
