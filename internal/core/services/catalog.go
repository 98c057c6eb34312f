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

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the product catalogue.
type CatalogService struct {
	products driven.ProductStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products driven.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// List returns all products ordered by name.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// Get retrieves a product by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

// Search finds products by name substring.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.products.Search(ctx, query)
}

// Create records a new product and returns its generated ID. Input
// validation is the caller's responsibility; the data layer accepts
// whatever satisfies the column types.
func (s *CatalogService) Create(ctx context.Context, name string, price float64, stock int64) (string, error) {
	now := time.Now().Unix()
	product := domain.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return "", fmt.Errorf("creating product: %w", err)
	}
	logger.Debug("created product %s (%s)", product.ID, name)
	return product.ID, nil
}

// Update applies a partial update. An update with no fields set is a
// no-op that still succeeds.
func (s *CatalogService) Update(ctx context.Context, id string, update domain.ProductUpdate) error {
	return s.products.Update(ctx, id, update, time.Now().Unix())
}

// Delete removes a product unless a sale references it.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// AdjustStock adds delta to the product's stock. Delta may be negative;
// no floor is enforced.
func (s *CatalogService) AdjustStock(ctx context.Context, id string, delta int64) error {
	return s.products.AdjustStock(ctx, id, delta, time.Now().Unix())
}
