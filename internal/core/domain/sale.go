package domain

// Sale represents one checkout event: a transaction header and its
// line items. A sale is created once as an atomic unit and never
// mutated or deleted afterwards.
type Sale struct {
	// ID is the unique identifier for the sale.
	ID string

	// TotalAmount is the sum of all line item subtotals.
	TotalAmount float64

	// PaymentAmount is what the customer handed over.
	PaymentAmount float64

	// ChangeAmount is payment minus total, as computed by the caller.
	// The storage layer does not recompute it.
	ChangeAmount float64

	// CreatedAt is when the sale was recorded, in Unix seconds.
	CreatedAt int64

	// Items holds the line items. Nil when the sale was loaded without
	// them (list views load items lazily).
	Items []SaleItem
}

// SaleItem is one product-quantity-price record within a sale. The
// price is a snapshot of the unit price at sale time, decoupled from
// the product's current price.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	Price     float64

	// Subtotal is price times quantity, stored at sale time rather
	// than derived at read time.
	Subtotal float64

	// ProductName is the referenced product's current name, filled in
	// by joins for display. Empty when not loaded.
	ProductName string
}

// SalesReport aggregates sales over an inclusive date range.
type SalesReport struct {
	// TotalRevenue is the summed total_amount of all sales in range.
	// Zero when no sales fall in range, never absent.
	TotalRevenue float64

	// Count is the number of sales in range.
	Count int64

	// Products is the per-product breakdown, ordered by quantity sold
	// descending.
	Products []ProductSales
}

// ProductSales is one row of a report's per-product breakdown.
type ProductSales struct {
	ProductID   string
	ProductName string
	Quantity    int64
	Revenue     float64
}
