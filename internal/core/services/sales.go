package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
	"github.com/koncoweb/kasir-go/internal/core/ports/driving"
	"github.com/koncoweb/kasir-go/internal/logger"
)

// Ensure SalesService implements the interface.
var _ driving.SalesService = (*SalesService)(nil)

// SalesService records checkouts and answers sales queries.
type SalesService struct {
	sales driven.SaleStore
}

// NewSalesService creates a new sales service.
func NewSalesService(sales driven.SaleStore) *SalesService {
	return &SalesService{sales: sales}
}

// Checkout records a sale. The cart is normalized first so the same
// product never produces two line items; each line item then gets its
// own identifier and a subtotal computed from its price and quantity.
// The change amount is taken from the caller as-is, matching the rest
// of the data layer's stance of trusting presentation-side arithmetic.
func (s *SalesService) Checkout(ctx context.Context, total, payment, change float64, cart []domain.CartLine) (string, error) {
	if len(cart) == 0 {
		return "", fmt.Errorf("%w: empty cart", domain.ErrInvalidInput)
	}

	sale := domain.Sale{
		ID:            uuid.New().String(),
		TotalAmount:   total,
		PaymentAmount: payment,
		ChangeAmount:  change,
		CreatedAt:     time.Now().Unix(),
	}

	for _, line := range domain.NormalizeCart(cart) {
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Subtotal:  line.Price * float64(line.Quantity),
		})
	}

	if err := s.sales.CreateSale(ctx, sale); err != nil {
		return "", fmt.Errorf("recording sale: %w", err)
	}
	logger.Debug("recorded sale %s (%d items, total %.2f)", sale.ID, len(sale.Items), total)
	return sale.ID, nil
}

// List returns all sales newest first, without line items.
func (s *SalesService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.List(ctx)
}

// Get retrieves a sale with its line items.
func (s *SalesService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.sales.GetSale(ctx, id)
}

// Report aggregates sales between start and end, inclusive.
func (s *SalesService) Report(ctx context.Context, start, end int64) (*domain.SalesReport, error) {
	return s.sales.Report(ctx, start, end)
}
