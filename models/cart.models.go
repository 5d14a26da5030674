package models

import (
	"github.com/shopspring/decimal"
)

// CartLine represents a product in the cart with its quantity
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price × quantity for the line
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartView is the serializable state of a session's cart
type CartView struct {
	Items  []CartLine      `json:"items"`
	IsOpen bool            `json:"is_open"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}
