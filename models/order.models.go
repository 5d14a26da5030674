package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one purchased line as recorded in the snapshot
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LineTotal returns price × quantity for the item
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderSnapshot represents the last order placed by a session.
// Amounts are nullable so that snapshots missing a field can still be told
// apart from snapshots carrying a zero.
type OrderSnapshot struct {
	OrderID        string              `json:"order_id,omitempty"`
	Items          []OrderItem         `json:"items"`
	Subtotal       decimal.NullDecimal `json:"subtotal"`
	PromoDiscount  decimal.NullDecimal `json:"promo_discount"`
	PromoCode      string              `json:"promo_code,omitempty"`
	DeliveryFee    decimal.NullDecimal `json:"delivery_fee"`
	DeliveryMethod DeliveryMethod      `json:"delivery_method,omitempty"`
	VAT            decimal.NullDecimal `json:"vat"`
	Total          decimal.NullDecimal `json:"total"`
	PaymentMethod  string              `json:"payment_method"`
	TransactionID  string              `json:"transaction_id,omitempty"`
	PlacedAt       time.Time           `json:"placed_at"`
}

// Renderable reports whether the snapshot has an items list and a total
func (s *OrderSnapshot) Renderable() bool {
	return s != nil && s.Items != nil && s.Total.Valid
}

// PlacedOrder is what notifiers receive once an order has been dispatched
type PlacedOrder struct {
	SessionID string        `json:"session_id"`
	Customer  CheckoutForm  `json:"customer"`
	Snapshot  OrderSnapshot `json:"snapshot"`
	Message   string        `json:"message"`
}
