package domain

// Product represents a sellable item in the shop's catalogue.
type Product struct {
	// ID is the unique identifier for the product.
	ID string

	// Name is the human-readable product name.
	Name string

	// Price is the current unit price. Validation (positive price,
	// non-empty name) is a presentation concern; storage accepts
	// whatever satisfies the column types.
	Price float64

	// Stock is the quantity on hand. It may go negative: there is no
	// enforced floor, so overselling is permitted by policy.
	Stock int64

	// CreatedAt is when the product was created, in Unix seconds.
	CreatedAt int64

	// UpdatedAt is when the product was last modified, in Unix seconds.
	UpdatedAt int64
}

// ProductUpdate describes a partial update to a product. Nil fields are
// left untouched. An update with no fields set is a no-op.
type ProductUpdate struct {
	Name  *string
	Price *float64
	Stock *int64
}

// IsEmpty returns true if no field is set.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Stock == nil
}
