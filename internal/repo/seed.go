package repo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/konnichiwabon/inventory/internal/models"
)

// SeedDemoProducts loads the demo dataset for one owner: 25 products
// with prices between 10 and 100, quantities between 0 and 19, the
// default low-stock threshold, and creation dates stepped into the
// past so the weekly chart has data. The RNG is seeded so repeated
// runs produce the same dataset.
func SeedDemoProducts(ctx context.Context, products ProductRepository, ownerID int) error {
	rng := rand.New(rand.NewSource(1))
	now := time.Now().UTC()
	threshold := 5

	for i := 0; i < 25; i++ {
		createdAt := now.AddDate(0, 0, -5*i)
		p := models.Product{
			OwnerID:    ownerID,
			Name:       fmt.Sprintf("Product %d", i+1),
			Sku:        fmt.Sprintf("DEMO-%03d", i+1),
			Price:      decimal.NewFromFloat(rng.Float64()*90 + 10).Round(2),
			Quantity:   rng.Intn(20),
			LowStockAt: &threshold,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
		if _, err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", i+1, err)
		}
	}
	return nil
}
