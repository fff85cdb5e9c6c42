package repo

import (
	"context"
	"errors"

	"github.com/konnichiwabon/inventory/internal/models"
)

// ErrProductNotFound is returned when a product does not exist or is
// owned by another user.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when a user is not found in the repository.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")

// ProductRepository defines the interface for product data operations.
// Every operation is scoped to one owner: reads never return another
// user's products, and mutations on another user's rows report
// ErrProductNotFound.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetByID(ctx context.Context, ownerID, id int) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, ownerID, id int) error

	// CountByOwner returns the number of products the owner has.
	CountByOwner(ctx context.Context, ownerID int) (int, error)
	// ListByOwner returns the owner's full product snapshot.
	ListByOwner(ctx context.Context, ownerID int) ([]models.Product, error)
	// RecentByOwner returns the owner's newest products, newest first.
	RecentByOwner(ctx context.Context, ownerID, limit int) ([]models.Product, error)
	// Filter applies optional name/price/quantity bounds with pagination
	// and returns the matching page plus the unpaginated match count.
	Filter(ctx context.Context, ownerID int, filter ProductFilter) ([]models.Product, int, error)
}
