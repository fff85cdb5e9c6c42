package repo

import (
	"context"
	"sort"
	"strings"

	"github.com/konnichiwabon/inventory/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1}
}

func (r *InMemoryProductRepository) Create(_ context.Context, p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.OwnerID == p.OwnerID && existing.Name == p.Name {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetByID(_ context.Context, ownerID, id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID && p.OwnerID == product.OwnerID {
			product.CreatedAt = p.CreatedAt
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(_ context.Context, ownerID, id int) error {
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) CountByOwner(_ context.Context, ownerID int) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryProductRepository) ListByOwner(_ context.Context, ownerID int) ([]models.Product, error) {
	var products []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *InMemoryProductRepository) RecentByOwner(ctx context.Context, ownerID, limit int) ([]models.Product, error) {
	products, _ := r.ListByOwner(ctx, ownerID)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (r *InMemoryProductRepository) Filter(ctx context.Context, ownerID int, f ProductFilter) ([]models.Product, int, error) {
	all, _ := r.ListByOwner(ctx, ownerID)

	var matched []models.Product
	for _, p := range all {
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		priceF, _ := p.Price.Float64()
		if f.MinPrice != nil && priceF < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && priceF > *f.MaxPrice {
			continue
		}
		if f.MinQty != nil && p.Quantity < *f.MinQty {
			continue
		}
		if f.MaxQty != nil && p.Quantity > *f.MaxQty {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	if f.Offset != nil && *f.Offset > 0 {
		if *f.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[*f.Offset:]
		}
	}
	if f.Limit != nil && *f.Limit > 0 && len(matched) > *f.Limit {
		matched = matched[:*f.Limit]
	}
	return matched, total, nil
}

// Clear removes every product; test helper.
func (r *InMemoryProductRepository) Clear() {
	r.products = nil
	r.nextID = 1
}
