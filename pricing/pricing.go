// Package pricing derives subtotal, promo discount, delivery fee, VAT and grand
// total from a cart and the shopper's checkout options.
package pricing

import (
	"dira-storefront/models"

	"github.com/shopspring/decimal"
)

var (
	// DefaultDeliveryFee is charged for home delivery of a non-empty cart
	DefaultDeliveryFee = decimal.NewFromInt(5)
	// DefaultVATRate is applied to the discounted subtotal plus delivery
	DefaultVATRate = decimal.RequireFromString("0.18")

	hundred = decimal.NewFromInt(100)
)

// Options are the shopper's checkout choices
type Options struct {
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	Promo          *models.PromoCode     `json:"promo,omitempty"`
}

// ApplyPromo looks code up in table and makes it the only active promo.
// On a miss the options are left unchanged.
func (o *Options) ApplyPromo(table PromoTable, code string) (models.PromoCode, error) {
	p, err := table.Lookup(code)
	if err != nil {
		return models.PromoCode{}, err
	}
	o.Promo = &p
	return p, nil
}

// RemovePromo drops the active promo
func (o *Options) RemovePromo() {
	o.Promo = nil
}

// Breakdown is the full price derivation for one cart
type Breakdown struct {
	Subtotal           decimal.Decimal       `json:"subtotal"`
	PromoDiscount      decimal.Decimal       `json:"promo_discount"`
	PromoCode          string                `json:"promo_code,omitempty"`
	DiscountedSubtotal decimal.Decimal       `json:"discounted_subtotal"`
	DeliveryFee        decimal.Decimal       `json:"delivery_fee"`
	DeliveryMethod     models.DeliveryMethod `json:"delivery_method"`
	VATRate            decimal.Decimal       `json:"vat_rate"`
	VAT                decimal.Decimal       `json:"vat"`
	Total              decimal.Decimal       `json:"total"`
}

// Calculator holds the fee and tax constants
type Calculator struct {
	DeliveryFee decimal.Decimal
	VATRate     decimal.Decimal
}

// NewCalculator returns a calculator with the given fee and VAT rate
func NewCalculator(deliveryFee, vatRate decimal.Decimal) *Calculator {
	return &Calculator{DeliveryFee: deliveryFee, VATRate: vatRate}
}

// Default returns a calculator with the shop's standard fee and VAT rate
func Default() *Calculator {
	return NewCalculator(DefaultDeliveryFee, DefaultVATRate)
}

// Discount returns the amount promo removes from subtotal, never more than
// the subtotal itself.
func Discount(subtotal decimal.Decimal, promo *models.PromoCode) decimal.Decimal {
	if promo == nil {
		return decimal.Zero
	}
	var d decimal.Decimal
	switch promo.Kind {
	case models.DiscountPercent:
		d = subtotal.Mul(promo.Discount).Div(hundred)
	case models.DiscountFixed:
		d = promo.Discount
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(d, decimal.Max(subtotal, decimal.Zero))
}

// Quote derives the totals for a cart with itemCount lines and the given
// subtotal.
func (c *Calculator) Quote(itemCount int, subtotal decimal.Decimal, opts Options) Breakdown {
	method := opts.DeliveryMethod
	if !method.Valid() {
		method = models.DeliveryHome
	}

	fee := decimal.Zero
	if method == models.DeliveryHome && itemCount > 0 {
		fee = c.DeliveryFee
	}

	discount := Discount(subtotal, opts.Promo)
	discounted := decimal.Max(decimal.Zero, subtotal.Sub(discount))
	vat := discounted.Add(fee).Mul(c.VATRate)

	b := Breakdown{
		Subtotal:           subtotal,
		PromoDiscount:      discount,
		DiscountedSubtotal: discounted,
		DeliveryFee:        fee,
		DeliveryMethod:     method,
		VATRate:            c.VATRate,
		VAT:                vat,
		Total:              discounted.Add(fee).Add(vat),
	}
	if opts.Promo != nil {
		b.PromoCode = opts.Promo.Code
	}
	return b
}

// QuoteLines is Quote over cart lines
func (c *Calculator) QuoteLines(lines []models.CartLine, opts Options) Breakdown {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return c.Quote(len(lines), subtotal, opts)
}
