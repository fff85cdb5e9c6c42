package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product entity in the inventory system. Every
// product belongs to exactly one user; queries are always scoped by
// OwnerID.
type Product struct {
	ID         int             `json:"id"`
	OwnerID    int             `json:"owner_id"`
	Name       string          `json:"name"`
	Sku        string          `json:"sku,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	LowStockAt *int            `json:"low_stock_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at,omitempty"`
}
