package models

import (
	"github.com/shopspring/decimal"
)

// DiscountKind decides how a promo magnitude is applied
type DiscountKind string

const (
	DiscountPercent DiscountKind = "percent"
	DiscountFixed   DiscountKind = "fixed"
)

// PromoCode represents an entry of the static promo table
type PromoCode struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Kind     DiscountKind    `json:"kind"`
}
