package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/konnichiwabon/inventory/internal/models"
)

func seedProduct(t *testing.T, r *InMemoryProductRepository, ownerID int, name string, price string, qty int, createdAt time.Time) models.Product {
	t.Helper()
	p, err := r.Create(context.Background(), models.Product{
		OwnerID:   ownerID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("failed to create product %s: %v", name, err)
	}
	return p
}

func TestInMemoryOwnerScoping(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()
	now := time.Now()

	mine := seedProduct(t, r, 1, "Keyboard", "40.00", 10, now)
	seedProduct(t, r, 2, "Mouse", "20.00", 1, now)

	count, err := r.CountByOwner(ctx, 1)
	if err != nil || count != 1 {
		t.Fatalf("expected owner 1 to have 1 product, got %d (err %v)", count, err)
	}

	products, err := r.ListByOwner(ctx, 1)
	if err != nil || len(products) != 1 || products[0].Name != "Keyboard" {
		t.Fatalf("unexpected owner 1 listing: %v (err %v)", products, err)
	}

	// Another owner's product is invisible to reads and mutations.
	if _, err := r.GetByID(ctx, 1, mine.ID+1); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound for foreign product, got %v", err)
	}
	if err := r.Delete(ctx, 1, mine.ID+1); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound deleting foreign product, got %v", err)
	}
}

func TestInMemoryRecentByOwner(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		seedProduct(t, r, 1, "P"+string(rune('A'+i)), "1.00", 1, base.AddDate(0, 0, i))
	}

	recent, err := r.RecentByOwner(ctx, 1, 5)
	if err != nil {
		t.Fatalf("RecentByOwner failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent products, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("recent products not ordered newest first at index %d", i)
		}
	}
	if recent[0].Name != "PG" {
		t.Errorf("expected newest product PG first, got %s", recent[0].Name)
	}
}

func TestInMemoryFilter(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()
	now := time.Now()

	seedProduct(t, r, 1, "Keyboard", "40.00", 10, now)
	seedProduct(t, r, 1, "Mouse", "20.00", 1, now)
	seedProduct(t, r, 1, "Monitor", "150.00", 2, now)

	minPrice := 30.0
	products, total, err := r.Filter(ctx, 1, ProductFilter{MinPrice: &minPrice})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("expected 2 matches, got total=%d len=%d", total, len(products))
	}

	limit := 1
	products, total, err = r.Filter(ctx, 1, ProductFilter{Name: "mo", Limit: &limit})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2 for name filter, got %d", total)
	}
	if len(products) != 1 {
		t.Errorf("expected page of 1, got %d", len(products))
	}
}

func TestInMemoryDuplicateName(t *testing.T) {
	r := NewInMemoryProductRepository()
	now := time.Now()

	seedProduct(t, r, 1, "Keyboard", "40.00", 10, now)
	_, err := r.Create(context.Background(), models.Product{OwnerID: 1, Name: "Keyboard", Price: decimal.New(1, 0)})
	if err != ErrDuplicatedValueUnique {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}
}

func TestSeedDemoProducts(t *testing.T) {
	r := NewInMemoryProductRepository()
	ctx := context.Background()

	if err := SeedDemoProducts(ctx, r, 7); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	count, _ := r.CountByOwner(ctx, 7)
	if count != 25 {
		t.Errorf("expected 25 seeded products, got %d", count)
	}

	products, _ := r.ListByOwner(ctx, 7)
	for _, p := range products {
		if p.Quantity < 0 || p.Quantity > 19 {
			t.Errorf("product %s quantity %d outside 0-19", p.Name, p.Quantity)
		}
		if p.Price.LessThan(decimal.NewFromInt(10)) || p.Price.GreaterThan(decimal.NewFromInt(100)) {
			t.Errorf("product %s price %s outside 10-100", p.Name, p.Price)
		}
		if p.LowStockAt == nil || *p.LowStockAt != 5 {
			t.Errorf("product %s missing default threshold", p.Name)
		}
	}
}
