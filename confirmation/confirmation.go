// Package confirmation turns a last-order snapshot into the order
// confirmation view.
package confirmation

import (
	"context"
	"errors"
	"fmt"

	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShopPath is where shoppers without an order to show are sent
const ShopPath = "/shop"

// ErrNoOrder means there is nothing to confirm; callers redirect to ShopPath
var ErrNoOrder = errors.New("no order to show")

// Source tells where the rendered snapshot came from
type Source string

const (
	SourceCarried Source = "carried"
	SourceStored  Source = "stored"
)

// Line is one rendered item
type Line struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Display   string          `json:"display"`
}

// Row is a labelled amount in the totals block
type Row struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

// View is the confirmation page content
type View struct {
	Source         Source                `json:"source"`
	OrderID        string                `json:"order_id,omitempty"`
	Title          string                `json:"title"`
	Message        string                `json:"message"`
	Items          []Line                `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Discount       decimal.Decimal       `json:"discount"`
	PromoCode      string                `json:"promo_code,omitempty"`
	DeliveryFee    decimal.Decimal       `json:"delivery_fee"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	VAT            decimal.Decimal       `json:"vat"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethod  string                `json:"payment_method"`
	TransactionID  string                `json:"transaction_id,omitempty"`
	Rows           []Row                 `json:"rows"`
	Labels         map[string]string     `json:"labels"`
}

// Renderer builds views in a given language
type Renderer struct {
	snapshots  store.SnapshotStore
	translator *i18n.Translator
	currency   string
	vatRate    decimal.Decimal
	logger     *zap.Logger
}

func NewRenderer(snapshots store.SnapshotStore, translator *i18n.Translator, currency string, vatRate decimal.Decimal, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		snapshots:  snapshots,
		translator: translator,
		currency:   currency,
		vatRate:    vatRate,
		logger:     logger,
	}
}

// Resolve picks the snapshot to show: the carried one when it is renderable,
// else the one persisted for the session. ErrNoOrder when neither is; an
// unreadable stored record counts as none.
func (r *Renderer) Resolve(ctx context.Context, sessionID string, carried *models.OrderSnapshot) (*models.OrderSnapshot, Source, error) {
	if carried.Renderable() {
		return carried, SourceCarried, nil
	}

	stored, err := r.snapshots.Load(ctx, sessionID)
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil, "", ErrNoOrder
	}
	if errors.Is(err, store.ErrCorruptSnapshot) {
		r.logger.Warn("discarding unreadable order snapshot",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, "", ErrNoOrder
	}
	if err != nil {
		return nil, "", fmt.Errorf("load order snapshot: %w", err)
	}
	if !stored.Renderable() {
		return nil, "", ErrNoOrder
	}
	return stored, SourceStored, nil
}

// Render resolves and renders the confirmation for a session
func (r *Renderer) Render(ctx context.Context, sessionID string, carried *models.OrderSnapshot, lang i18n.Language) (*View, error) {
	snap, src, err := r.Resolve(ctx, sessionID, carried)
	if err != nil {
		return nil, err
	}
	v := r.Build(snap, lang)
	v.Source = src
	return v, nil
}

// Build renders snap, which must be renderable
func (r *Renderer) Build(snap *models.OrderSnapshot, lang i18n.Language) *View {
	t := r.translator.For(lang)

	total := snap.Total.Decimal
	subtotal := total
	if snap.Subtotal.Valid {
		subtotal = snap.Subtotal.Decimal
	}
	method := snap.DeliveryMethod
	if !method.Valid() {
		method = models.DeliveryHome
	}
	fee := amountOrZero(snap.DeliveryFee)
	vat := amountOrZero(snap.VAT)
	discount := InferDiscount(snap)

	v := &View{
		OrderID:        snap.OrderID,
		Title:          t("thankYou"),
		Message:        t("orderReceived"),
		Items:          make([]Line, 0, len(snap.Items)),
		Subtotal:       subtotal,
		Discount:       discount,
		PromoCode:      snap.PromoCode,
		DeliveryFee:    fee,
		DeliveryMethod: method,
		VAT:            vat,
		Total:          total,
		PaymentMethod:  snap.PaymentMethod,
		TransactionID:  snap.TransactionID,
	}

	for _, item := range snap.Items {
		lt := item.LineTotal()
		v.Items = append(v.Items, Line{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: lt,
			Display:   fmt.Sprintf("%s × %d", item.Name, item.Quantity),
		})
	}

	v.Rows = append(v.Rows, r.row("subtotal", t("subtotal"), subtotal))
	if discount.IsPositive() {
		label := t("discount")
		if snap.PromoCode != "" {
			label = fmt.Sprintf("%s (%s)", label, snap.PromoCode)
		}
		row := r.row("discount", label, discount)
		row.Display = "-" + row.Display
		v.Rows = append(v.Rows, row)
	}

	feeKey := "delivery"
	if method == models.DeliveryPickup {
		feeKey = "pickup"
	}
	feeRow := r.row(feeKey, t(feeKey), fee)
	if fee.IsZero() {
		feeRow.Display = t("free")
	}
	v.Rows = append(v.Rows,
		feeRow,
		r.row("vat", fmt.Sprintf("%s (%s%%)", t("vat"), r.vatRate.Mul(decimal.NewFromInt(100)).String()), vat),
		r.row("total", t("total"), total),
	)

	methodKey := "homeDelivery"
	if method == models.DeliveryPickup {
		methodKey = "storePickup"
	}
	v.Labels = map[string]string{
		"deliveryMethod":      t("deliveryMethod"),
		"deliveryMethodValue": t(methodKey),
		"payment":             t("payment"),
		"transactionId":       t("transactionId"),
		"continueShopping":    t("continueShopping"),
		"orderSummary":        t("orderSummary"),
	}
	return v
}

func (r *Renderer) row(key, label string, amount decimal.Decimal) Row {
	return Row{Key: key, Label: label, Amount: amount, Display: r.currency + amount.StringFixed(2)}
}

// InferDiscount returns the discount to display. An explicit positive amount
// wins; otherwise, and only when a promo code was recorded, the gap between
// the listed amounts and the total is shown. Display only.
func InferDiscount(snap *models.OrderSnapshot) decimal.Decimal {
	if snap.PromoDiscount.Valid && snap.PromoDiscount.Decimal.IsPositive() {
		return snap.PromoDiscount.Decimal
	}
	if snap.PromoCode == "" || !snap.Total.Valid {
		return decimal.Zero
	}
	subtotal := snap.Total.Decimal
	if snap.Subtotal.Valid {
		subtotal = snap.Subtotal.Decimal
	}
	gap := subtotal.Add(amountOrZero(snap.DeliveryFee)).Add(amountOrZero(snap.VAT)).Sub(snap.Total.Decimal)
	return decimal.Max(decimal.Zero, gap)
}

func amountOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
