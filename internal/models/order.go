package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest represents an incoming order creation request
type OrderRequest struct {
	ProductIDs []int64 `json:"productIds"`
}

// Order represents a persisted order. TotalPrice is a snapshot of the
// referenced products' prices at creation time; later price changes do
// not affect it.
type Order struct {
	ID         int64           `json:"id"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	Products   []Product       `json:"products"`
}
