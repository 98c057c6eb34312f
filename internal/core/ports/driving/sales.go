package driving

import (
	"context"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

// SalesService records checkouts and answers sales queries.
type SalesService interface {
	// Checkout records a sale atomically: the header, one line item
	// per distinct product in the cart, and the matching stock
	// decrements. Duplicate cart lines for the same product are merged
	// before persistence. Returns the new sale's ID.
	Checkout(ctx context.Context, total, payment, change float64, cart []domain.CartLine) (string, error)

	// List returns all sales, newest first, without line items.
	List(ctx context.Context) ([]domain.Sale, error)

	// Get retrieves a sale with its line items, domain.ErrNotFound
	// when absent.
	Get(ctx context.Context, id string) (*domain.Sale, error)

	// Report aggregates sales between start and end, inclusive Unix
	// seconds.
	Report(ctx context.Context, start, end int64) (*domain.SalesReport, error)
}
