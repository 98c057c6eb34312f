package domain

// CartLine is one entry of a cart as handed over by the caller:
// a product, how many of it, and the unit price to charge.
type CartLine struct {
	ProductID string
	Quantity  int64
	Price     float64
}

// NormalizeCart merges duplicate product lines into one line per
// product, summing quantities. When the same product appears with
// different prices the last price wins. Order of first appearance is
// preserved. Line item identifiers are assigned per product, so a cart
// must be normalized before it is persisted.
func NormalizeCart(lines []CartLine) []CartLine {
	if len(lines) < 2 {
		return lines
	}

	index := make(map[string]int, len(lines))
	merged := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		i, ok := index[line.ProductID]
		if !ok {
			index[line.ProductID] = len(merged)
			merged = append(merged, line)
			continue
		}
		merged[i].Quantity += line.Quantity
		merged[i].Price = line.Price
	}
	return merged
}
