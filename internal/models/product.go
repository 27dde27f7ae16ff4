package models

import "github.com/shopspring/decimal"

// Product represents a purchasable item
// Price is an exact decimal; float money is deliberately avoided
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductRequest represents an incoming product creation request.
// Name and price are persisted as supplied; no validation is applied.
type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
