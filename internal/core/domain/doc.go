// Package domain defines the core business entities for kasir.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: A sellable item with a price and a stock count
//   - Sale: One checkout event (header plus line items)
//   - SaleItem: One product-quantity-price record within a sale
//   - SalesReport: Aggregated revenue over a date range
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
