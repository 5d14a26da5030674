package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"dira-storefront/apperr"
	"dira-storefront/cart"
	"dira-storefront/catalog"
	"dira-storefront/models"
	"dira-storefront/pricing"
	"dira-storefront/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatcherMock struct {
	calls   int
	phone   string
	message string
	err     error
}

func (d *dispatcherMock) Dispatch(_ context.Context, phone, message string) (string, error) {
	d.calls++
	d.phone = phone
	d.message = message
	if d.err != nil {
		return "", d.err
	}
	return BuildWhatsAppLink("https://wa.me", phone, message), nil
}

type notifierMock struct {
	mu     sync.Mutex
	orders []models.PlacedOrder
	err    error
}

func (n *notifierMock) OrderPlaced(_ context.Context, order models.PlacedOrder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
	return n.err
}

type fixedRand struct{ n int }

func (f fixedRand) IntN(int) int { return f.n }

func fixedTxIDs() TxIDGenerator {
	return TxIDGenerator{
		Rand: fixedRand{n: 10},
		Now:  func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

type fixture struct {
	orch       *Orchestrator
	dispatcher *dispatcherMock
	notifier   *notifierMock
	snapshots  *store.MemoryStore
	cart       *cart.Cart
	opts       *pricing.Options
}

func newFixture(t *testing.T, phone string) *fixture {
	t.Helper()
	f := &fixture{
		dispatcher: &dispatcherMock{},
		notifier:   &notifierMock{},
		snapshots:  store.NewMemoryStore(),
		cart:       cart.New(),
		opts:       &pricing.Options{DeliveryMethod: models.DeliveryHome},
	}
	f.orch = NewOrchestrator(
		Config{ShopPhone: phone, Currency: "$", DispatchDelay: 900 * time.Millisecond},
		pricing.Default(), f.dispatcher, f.snapshots, fixedTxIDs(), nil, f.notifier,
	)

	cat := catalog.Default()
	for _, id := range []string{"rose-geranium", "citrus-basil"} {
		p, err := cat.Get(id)
		require.NoError(t, err)
		f.cart.Add(p)
	}
	return f
}

func codForm() models.CheckoutForm {
	return models.CheckoutForm{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Address:       "123 Kisutu Street",
		City:          "Dar es Salaam",
		Region:        "Dar es Salaam",
		PostalCode:    "12345",
		PaymentMethod: models.PaymentOnDelivery,
	}
}

func TestSubmit_PayOnDelivery(t *testing.T) {
	f := newFixture(t, "255695234234")
	ctx := context.Background()

	res, err := f.orch.Submit(ctx, "sess", f.cart, f.opts, codForm())
	require.NoError(t, err)
	f.orch.Wait()

	assert.Equal(t, 1, f.dispatcher.calls)
	assert.Equal(t, "255695234234", f.dispatcher.phone)
	assert.True(t, strings.HasPrefix(res.DispatchURL, "https://wa.me/255695234234?text=New%20Order"))
	assert.Equal(t, ConfirmationPath, res.Redirect)
	assert.Equal(t, int64(900), res.RedirectAfterMS)

	snap := res.Snapshot
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "34.00", snap.Subtotal.Decimal.StringFixed(2))
	assert.Equal(t, "5.00", snap.DeliveryFee.Decimal.StringFixed(2))
	assert.Equal(t, "7.02", snap.VAT.Decimal.StringFixed(2))
	assert.Equal(t, "46.02", snap.Total.Decimal.StringFixed(2))
	assert.Equal(t, "Pay on Delivery", snap.PaymentMethod)
	assert.Empty(t, snap.TransactionID)

	assert.True(t, f.cart.IsEmpty())

	stored, err := f.snapshots.Load(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, snap.OrderID, stored.OrderID)
	assert.True(t, snap.Total.Decimal.Equal(stored.Total.Decimal))

	require.Len(t, f.notifier.orders, 1)
	assert.Equal(t, "jane@example.com", f.notifier.orders[0].Customer.Email)
	assert.Equal(t, res.Message, f.notifier.orders[0].Message)
}

func TestSubmit_MobileWithoutWalletDoesNotDispatch(t *testing.T) {
	f := newFixture(t, "255695234234")
	form := codForm()
	form.PaymentMethod = models.PaymentMobile

	_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, form)
	assert.ErrorIs(t, err, apperr.ErrWalletRequired)
	assert.Zero(t, f.dispatcher.calls)
	assert.Equal(t, 2, f.cart.Len())

	_, err = f.snapshots.Load(context.Background(), "sess")
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestSubmit_MobileWithWallet(t *testing.T) {
	f := newFixture(t, "255695234234")
	form := codForm()
	form.PaymentMethod = models.PaymentMobile
	form.Wallet = models.WalletMpesa

	res, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, form)
	require.NoError(t, err)

	assert.Equal(t, "MPESA-AAAAAA-LOYW3V28", res.Snapshot.TransactionID)
	assert.Equal(t, "Mobile Banking (MPESA)", res.Snapshot.PaymentMethod)
	assert.Contains(t, f.dispatcher.message, "New Order – Mobile Banking")
	assert.Contains(t, f.dispatcher.message, "Wallet: MPESA")
	assert.Contains(t, f.dispatcher.message, "Transaction ID: MPESA-AAAAAA-LOYW3V28")
}

func TestSubmit_UnconfiguredPhone(t *testing.T) {
	for _, phone := range []string{"", "REPLACE_WITH_SHOP_NUMBER", "+255 695"} {
		f := newFixture(t, phone)

		_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, codForm())

		var ce *apperr.ConfigError
		require.ErrorAs(t, err, &ce, "phone %q", phone)
		assert.Zero(t, f.dispatcher.calls)
		assert.Equal(t, 2, f.cart.Len())
		_, err = f.snapshots.Load(context.Background(), "sess")
		assert.ErrorIs(t, err, store.ErrNoSnapshot)
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	f := newFixture(t, "255695234234")
	f.cart.Clear()

	_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, codForm())
	assert.ErrorIs(t, err, apperr.ErrEmptyCart)
	assert.Zero(t, f.dispatcher.calls)
}

func TestSubmit_MissingFields(t *testing.T) {
	f := newFixture(t, "255695234234")
	form := codForm()
	form.FullName = "  "
	form.City = ""

	_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, form)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "required", ve.Fields["full_name"])
	assert.Equal(t, "required", ve.Fields["city"])
	assert.Zero(t, f.dispatcher.calls)
	assert.Equal(t, 2, f.cart.Len())
}

func TestSubmit_PickupSkipsAddress(t *testing.T) {
	f := newFixture(t, "255695234234")
	f.opts.DeliveryMethod = models.DeliveryPickup
	form := models.CheckoutForm{FullName: "Jane Doe", Email: "jane@example.com", PaymentMethod: models.PaymentOnDelivery}

	res, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, form)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryPickup, res.Snapshot.DeliveryMethod)
	assert.True(t, res.Snapshot.DeliveryFee.Decimal.IsZero())
	assert.Contains(t, res.Message, "Pickup: Free")
	assert.Contains(t, res.Message, "Delivery Method: Store Pickup")
}

func TestSubmit_PromoCarriedAndReset(t *testing.T) {
	f := newFixture(t, "255695234234")
	_, err := f.opts.ApplyPromo(pricing.DefaultPromos(), "save10")
	require.NoError(t, err)

	res, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, codForm())
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", res.Snapshot.PromoCode)
	assert.Equal(t, "3.40", res.Snapshot.PromoDiscount.Decimal.StringFixed(2))
	assert.Contains(t, res.Message, "Discount (SAVE10): -$3.40")
	assert.Nil(t, f.opts.Promo)
}

func TestSubmit_DispatchFailureChangesNothing(t *testing.T) {
	f := newFixture(t, "255695234234")
	f.dispatcher.err = errors.New("link refused")

	_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, codForm())
	require.Error(t, err)
	assert.Equal(t, 2, f.cart.Len())
	_, err = f.snapshots.Load(context.Background(), "sess")
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestSubmit_NotifierFailureDoesNotFailOrder(t *testing.T) {
	f := newFixture(t, "255695234234")
	f.notifier.err = errors.New("smtp down")

	_, err := f.orch.Submit(context.Background(), "sess", f.cart, f.opts, codForm())
	require.NoError(t, err)
	f.orch.Wait()
	assert.Len(t, f.notifier.orders, 1)
}
