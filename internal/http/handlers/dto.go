package handlers

import (
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name       string          `json:"name"`
	Sku        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	LowStockAt *int            `json:"low_stock_at"`
}

type ProductResponse struct {
	Id         int             `json:"id"`
	Name       string          `json:"name"`
	Sku        string          `json:"sku,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	LowStockAt *int            `json:"low_stock_at,omitempty"`
	StockLevel string          `json:"stock_level"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

// RecentProductResponse is one row of the dashboard's stock-levels
// widget.
type RecentProductResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Sku        string `json:"sku,omitempty"`
	Quantity   int    `json:"quantity"`
	StockLevel string `json:"stock_level"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
