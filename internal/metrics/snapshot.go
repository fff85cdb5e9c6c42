package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/konnichiwabon/inventory/internal/models"
)

// StockBuckets holds the count of products in each stock level. The
// three counts always sum to the total number of products.
type StockBuckets struct {
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	InStock    int `json:"in_stock"`
}

// StockPercentages expresses each bucket as a whole percentage of the
// total. Buckets are rounded independently, so the three values need
// not sum to exactly 100.
type StockPercentages struct {
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	InStock    int `json:"in_stock"`
}

// Snapshot is the full set of dashboard metrics derived from one
// user's products. It is recomputed per request and never persisted.
type Snapshot struct {
	TotalProducts    int              `json:"total_products"`
	TotalValue       decimal.Decimal  `json:"total_value"`
	StockBuckets     StockBuckets     `json:"stock_buckets"`
	StockPercentages StockPercentages `json:"stock_percentages"`
	WeeklySeries     []WeekPoint      `json:"weekly_series"`
}

// Compute reduces a snapshot of one user's products into dashboard
// metrics. The caller is responsible for the per-owner filter; Compute
// never looks at OwnerID and never mutates its input.
func Compute(products []models.Product, now time.Time) Snapshot {
	s := Snapshot{TotalProducts: len(products), TotalValue: decimal.Zero}

	for _, p := range products {
		if p.Quantity > 0 {
			s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		}

		switch ClassifyProduct(p) {
		case OutOfStock:
			s.StockBuckets.OutOfStock++
		case LowStock:
			s.StockBuckets.LowStock++
		case InStock:
			s.StockBuckets.InStock++
		}
	}

	s.StockPercentages = StockPercentages{
		OutOfStock: percentage(s.StockBuckets.OutOfStock, s.TotalProducts),
		LowStock:   percentage(s.StockBuckets.LowStock, s.TotalProducts),
		InStock:    percentage(s.StockBuckets.InStock, s.TotalProducts),
	}

	s.WeeklySeries = WeeklySeries(products, now)
	return s
}

// percentage rounds count/total to a whole percent, defining 0/0 as 0.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
