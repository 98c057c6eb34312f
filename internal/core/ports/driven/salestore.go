package driven

import (
	"context"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

// SaleStore persists sales and answers reporting queries.
type SaleStore interface {
	// CreateSale inserts the sale header, all line items, and the
	// corresponding stock decrements as one atomic unit. If any step
	// fails nothing is persisted and no stock changes.
	CreateSale(ctx context.Context, sale domain.Sale) error

	// List returns all sales ordered newest first, without line items.
	List(ctx context.Context) ([]domain.Sale, error)

	// GetSale retrieves a sale with its line items, each enriched with
	// the current product name. Returns domain.ErrNotFound when the
	// sale does not exist.
	GetSale(ctx context.Context, id string) (*domain.Sale, error)

	// Report aggregates sales whose created_at falls within
	// [start, end], both bounds inclusive, in Unix seconds.
	Report(ctx context.Context, start, end int64) (*domain.SalesReport, error)
}
