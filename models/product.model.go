package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way the storefront always rendered them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection tags a product as part of a curated range
type Collection string

const (
	CollectionNone      Collection = ""
	CollectionSignature Collection = "signature"
	CollectionSeasonal  Collection = "seasonal"
)

// Product represents a soap bar in the catalog
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Alt         string          `json:"alt,omitempty"`
	Collection  Collection      `json:"collection,omitempty"`
	Stock       *int            `json:"stock,omitempty"`       // nil = unlimited, 0 = unavailable
	StockLabel  string          `json:"stock_label,omitempty"` // e.g., "Only 3 left"
}

// Unlimited reports whether the product has no stock ceiling
func (p Product) Unlimited() bool {
	return p.Stock == nil
}

// SoldOut reports whether the product can not be added at all
func (p Product) SoldOut() bool {
	return p.Stock != nil && *p.Stock <= 0
}
