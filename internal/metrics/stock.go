package metrics

import "github.com/konnichiwabon/inventory/internal/models"

// DefaultLowStockThreshold applies to products without an explicit
// low-stock threshold.
const DefaultLowStockThreshold = 5

// StockLevel classifies a product's quantity against its threshold.
type StockLevel int

const (
	OutOfStock StockLevel = iota
	LowStock
	InStock
)

func (l StockLevel) String() string {
	switch l {
	case OutOfStock:
		return "out_of_stock"
	case LowStock:
		return "low_stock"
	case InStock:
		return "in_stock"
	}
	return "unknown"
}

// Classify assigns a quantity to exactly one stock level. The three
// levels partition all quantities for any threshold: zero (or a
// negative quantity from a degraded store) is out of stock, anything
// up to and including the threshold is low, anything above is in
// stock. A threshold of 0 leaves the low bucket empty.
func Classify(quantity, threshold int) StockLevel {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= threshold:
		return LowStock
	default:
		return InStock
	}
}

// EffectiveThreshold returns the product's low-stock threshold, or the
// system default when none is set.
func EffectiveThreshold(p models.Product) int {
	if p.LowStockAt != nil {
		return *p.LowStockAt
	}
	return DefaultLowStockThreshold
}

// ClassifyProduct is a convenience wrapper combining Classify with the
// product's effective threshold.
func ClassifyProduct(p models.Product) StockLevel {
	return Classify(p.Quantity, EffectiveThreshold(p))
}
