package sqlite

import (
	"context"
	"fmt"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// SaleStore implements driven.SaleStore over either engine.
type SaleStore struct {
	engine driven.Engine
}

var _ driven.SaleStore = (*SaleStore)(nil)

// NewSaleStore creates a sale store backed by engine.
func NewSaleStore(engine driven.Engine) *SaleStore {
	return &SaleStore{engine: engine}
}

// CreateSale persists the header, every line item, and the matching
// stock decrements as one atomic unit. Any failure, including an
// unknown product, rolls the whole sale back: no header row remains and
// no stock changes.
func (s *SaleStore) CreateSale(ctx context.Context, sale domain.Sale) error {
	return s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO transactions (id, total_amount, payment_amount, change_amount, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			sale.ID, sale.TotalAmount, sale.PaymentAmount, sale.ChangeAmount, sale.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting sale header: %w", err)
		}

		for _, item := range sale.Items {
			_, err := tx.Exec(
				`INSERT INTO transaction_items (id, transaction_id, product_id, quantity, price, subtotal)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				item.ID, sale.ID, item.ProductID, item.Quantity, item.Price, item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("inserting line item for product %s: %w", item.ProductID, err)
			}

			affected, err := tx.Exec(
				"UPDATE products SET stock = stock - ?, updated_at = ? WHERE id = ?",
				item.Quantity, sale.CreatedAt, item.ProductID,
			)
			if err != nil {
				return fmt.Errorf("decrementing stock of %s: %w", item.ProductID, err)
			}
			if affected == 0 {
				return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrNotFound)
			}
		}
		return nil
	})
}

// List returns all sales newest first, without line items.
func (s *SaleStore) List(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query(`
			SELECT id, total_amount, payment_amount, change_amount, created_at
			FROM transactions ORDER BY created_at DESC
		`)
		if err != nil {
			return fmt.Errorf("querying sales: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var sale domain.Sale
			if err := rows.Scan(&sale.ID, &sale.TotalAmount, &sale.PaymentAmount,
				&sale.ChangeAmount, &sale.CreatedAt); err != nil {
				return fmt.Errorf("scanning sale: %w", err)
			}
			sales = append(sales, sale)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating sales: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// GetSale retrieves one sale with its line items. Item rows carry the
// referenced product's current name; a deleted product would leave the
// name empty, though deletion is blocked while references exist.
func (s *SaleStore) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	var sale *domain.Sale
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query(`
			SELECT id, total_amount, payment_amount, change_amount, created_at
			FROM transactions WHERE id = ?
		`, id)
		if err != nil {
			return fmt.Errorf("querying sale: %w", err)
		}

		var found domain.Sale
		ok := rows.Next()
		if ok {
			if err := rows.Scan(&found.ID, &found.TotalAmount, &found.PaymentAmount,
				&found.ChangeAmount, &found.CreatedAt); err != nil {
				rows.Close()
				return fmt.Errorf("scanning sale: %w", err)
			}
		}
		if err := rows.Close(); err != nil {
			return fmt.Errorf("closing sale query: %w", err)
		}
		if !ok {
			return domain.ErrNotFound
		}

		itemRows, err := tx.Query(`
			SELECT ti.id, ti.transaction_id, ti.product_id, ti.quantity, ti.price, ti.subtotal,
			       COALESCE(p.name, '')
			FROM transaction_items ti
			LEFT JOIN products p ON ti.product_id = p.id
			WHERE ti.transaction_id = ?
		`, id)
		if err != nil {
			return fmt.Errorf("querying line items: %w", err)
		}
		defer itemRows.Close()

		found.Items = []domain.SaleItem{}
		for itemRows.Next() {
			var item domain.SaleItem
			if err := itemRows.Scan(&item.ID, &item.SaleID, &item.ProductID,
				&item.Quantity, &item.Price, &item.Subtotal, &item.ProductName); err != nil {
				return fmt.Errorf("scanning line item: %w", err)
			}
			found.Items = append(found.Items, item)
		}
		if err := itemRows.Err(); err != nil {
			return fmt.Errorf("iterating line items: %w", err)
		}

		sale = &found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// Report aggregates sales with created_at in [start, end], both bounds
// inclusive. Revenue and count are zero when nothing falls in range.
func (s *SaleStore) Report(ctx context.Context, start, end int64) (*domain.SalesReport, error) {
	report := &domain.SalesReport{}
	err := s.engine.RunTransaction(ctx, func(tx driven.Tx) error {
		rows, err := tx.Query(`
			SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
			FROM transactions WHERE created_at BETWEEN ? AND ?
		`, start, end)
		if err != nil {
			return fmt.Errorf("querying report summary: %w", err)
		}
		if rows.Next() {
			if err := rows.Scan(&report.TotalRevenue, &report.Count); err != nil {
				rows.Close()
				return fmt.Errorf("scanning report summary: %w", err)
			}
		}
		if err := rows.Close(); err != nil {
			return fmt.Errorf("closing report summary: %w", err)
		}

		productRows, err := tx.Query(`
			SELECT ti.product_id, COALESCE(p.name, ''), SUM(ti.quantity), SUM(ti.subtotal)
			FROM transaction_items ti
			LEFT JOIN products p ON ti.product_id = p.id
			JOIN transactions t ON ti.transaction_id = t.id
			WHERE t.created_at BETWEEN ? AND ?
			GROUP BY ti.product_id
			ORDER BY SUM(ti.quantity) DESC
		`, start, end)
		if err != nil {
			return fmt.Errorf("querying report breakdown: %w", err)
		}
		defer productRows.Close()

		for productRows.Next() {
			var ps domain.ProductSales
			if err := productRows.Scan(&ps.ProductID, &ps.ProductName, &ps.Quantity, &ps.Revenue); err != nil {
				return fmt.Errorf("scanning report breakdown: %w", err)
			}
			report.Products = append(report.Products, ps)
		}
		if err := productRows.Err(); err != nil {
			return fmt.Errorf("iterating report breakdown: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
