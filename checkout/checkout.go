// Package checkout validates the order form, composes the order message,
// hands it to the shop and records the last-order snapshot.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dira-storefront/apperr"
	"dira-storefront/cart"
	"dira-storefront/models"
	"dira-storefront/pricing"
	"dira-storefront/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConfirmationPath is where the shopper goes after a successful submission
const ConfirmationPath = "/order-confirmation"

// Notifier is told about every dispatched order. Failures never undo the order.
type Notifier interface {
	OrderPlaced(ctx context.Context, order models.PlacedOrder) error
}

// Result is returned for a dispatched order
type Result struct {
	OrderID         string                `json:"order_id"`
	DispatchURL     string                `json:"dispatch_url"`
	Message         string                `json:"message"`
	Snapshot        *models.OrderSnapshot `json:"snapshot"`
	Redirect        string                `json:"redirect"`
	RedirectAfterMS int64                 `json:"redirect_after_ms"`

	PaymentMethod models.PaymentMethod `json:"-"`
}

// Orchestrator runs checkout submissions
type Orchestrator struct {
	shopPhone     string
	currency      string
	dispatchDelay time.Duration
	calculator    *pricing.Calculator
	dispatcher    Dispatcher
	snapshots     store.SnapshotStore
	txIDs         TxIDGenerator
	notifiers     []Notifier
	notifyTimeout time.Duration
	logger        *zap.Logger
	now           func() time.Time
	wg            sync.WaitGroup
}

// Config carries the orchestrator's settings
type Config struct {
	ShopPhone     string
	Currency      string
	DispatchDelay time.Duration
	NotifyTimeout time.Duration
}

// NewOrchestrator wires an orchestrator. txIDs may be the zero value.
func NewOrchestrator(cfg Config, calculator *pricing.Calculator, dispatcher Dispatcher, snapshots store.SnapshotStore, txIDs TxIDGenerator, logger *zap.Logger, notifiers ...Notifier) *Orchestrator {
	if cfg.Currency == "" {
		cfg.Currency = "$"
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		shopPhone:     cfg.ShopPhone,
		currency:      cfg.Currency,
		dispatchDelay: cfg.DispatchDelay,
		calculator:    calculator,
		dispatcher:    dispatcher,
		snapshots:     snapshots,
		txIDs:         txIDs,
		notifiers:     notifiers,
		notifyTimeout: cfg.NotifyTimeout,
		logger:        logger,
		now:           time.Now,
	}
}

// Currency returns the display currency symbol
func (o *Orchestrator) Currency() string {
	return o.currency
}

// Configured reports whether orders can be handed to the shop
func (o *Orchestrator) Configured() bool {
	return PhoneConfigured(o.shopPhone)
}

// Submit places the order held in c. Nothing is changed unless the order is
// dispatched; afterwards the snapshot is saved, the cart cleared and the
// promo dropped.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string, c *cart.Cart, opts *pricing.Options, form models.CheckoutForm) (*Result, error) {
	if c.IsEmpty() {
		return nil, apperr.ErrEmptyCart
	}

	form = normalizeForm(form)
	if form.DeliveryMethod == "" {
		form.DeliveryMethod = opts.DeliveryMethod
	}
	if !form.DeliveryMethod.Valid() {
		form.DeliveryMethod = models.DeliveryHome
	}
	if form.PaymentMethod == "" {
		form.PaymentMethod = models.PaymentOnDelivery
	}
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	if form.PaymentMethod == models.PaymentMobile && form.Wallet == "" {
		return nil, apperr.ErrWalletRequired
	}
	if !PhoneConfigured(o.shopPhone) {
		return nil, &apperr.ConfigError{
			Setting: "SHOP_WHATSAPP_NUMBER",
			Message: "set the shop's WhatsApp number in E.164 digits (e.g., 255712345678)",
		}
	}

	lines := c.Lines()
	quote := o.calculator.QuoteLines(lines, pricing.Options{
		DeliveryMethod: form.DeliveryMethod,
		Promo:          opts.Promo,
	})
	snap := o.snapshot(lines, quote, form)
	message := ComposeMessage(o.currency, form, snap, form.Wallet)

	link, err := o.dispatcher.Dispatch(ctx, o.shopPhone, message)
	if err != nil {
		return nil, fmt.Errorf("dispatch order: %w", err)
	}

	// Dispatched: nothing below rolls back.
	if err := o.snapshots.Save(ctx, sessionID, snap); err != nil {
		o.logger.Error("failed to persist order snapshot",
			zap.String("session_id", sessionID),
			zap.String("order_id", snap.OrderID),
			zap.Error(err),
		)
	}
	c.Clear()
	opts.RemovePromo()
	opts.DeliveryMethod = form.DeliveryMethod

	o.notify(models.PlacedOrder{SessionID: sessionID, Customer: form, Snapshot: *snap, Message: message})

	o.logger.Info("order dispatched",
		zap.String("session_id", sessionID),
		zap.String("order_id", snap.OrderID),
		zap.String("payment_method", string(form.PaymentMethod)),
		zap.String("total", snap.Total.Decimal.StringFixed(2)),
	)

	return &Result{
		OrderID:         snap.OrderID,
		DispatchURL:     link,
		Message:         message,
		Snapshot:        snap,
		Redirect:        ConfirmationPath,
		RedirectAfterMS: o.dispatchDelay.Milliseconds(),
		PaymentMethod:   form.PaymentMethod,
	}, nil
}

func (o *Orchestrator) snapshot(lines []models.CartLine, quote pricing.Breakdown, form models.CheckoutForm) *models.OrderSnapshot {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{ID: l.ID, Name: l.Name, Quantity: l.Quantity, Price: l.Price})
	}

	snap := &models.OrderSnapshot{
		OrderID:        uuid.NewString(),
		Items:          items,
		Subtotal:       decimal.NewNullDecimal(quote.Subtotal),
		PromoDiscount:  decimal.NewNullDecimal(quote.PromoDiscount),
		PromoCode:      quote.PromoCode,
		DeliveryFee:    decimal.NewNullDecimal(quote.DeliveryFee),
		DeliveryMethod: quote.DeliveryMethod,
		VAT:            decimal.NewNullDecimal(quote.VAT),
		Total:          decimal.NewNullDecimal(quote.Total),
		PaymentMethod:  PaymentDescription(form.PaymentMethod, form.Wallet),
		PlacedAt:       o.now().UTC(),
	}
	if form.PaymentMethod == models.PaymentMobile {
		snap.TransactionID = o.txIDs.New(form.Wallet)
	}
	return snap
}

func (o *Orchestrator) notify(order models.PlacedOrder) {
	for _, n := range o.notifiers {
		o.wg.Add(1)
		go func(n Notifier) {
			defer o.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), o.notifyTimeout)
			defer cancel()
			if err := n.OrderPlaced(ctx, order); err != nil && !errors.Is(err, ErrNotifierDisabled) {
				o.logger.Warn("order notification failed",
					zap.String("order_id", order.Snapshot.OrderID),
					zap.Error(err),
				)
			}
		}(n)
	}
}

// ErrNotifierDisabled lets a notifier decline quietly
var ErrNotifierDisabled = errors.New("notifier disabled")

// Wait blocks until in-flight notifications finish
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}
