package utils

import (
	"context"
	"errors"
	"testing"

	"dira-storefront/checkout"
	"dira-storefront/models"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, html, text string
}

type mailerMock struct {
	sent []sentEmail
	err  error
}

func (m *mailerMock) send(_ context.Context, to, subject, htmlBody, textBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to, subject, htmlBody, textBody})
	return nil
}

func placedOrder() models.PlacedOrder {
	return models.PlacedOrder{
		SessionID: "sess",
		Customer:  models.CheckoutForm{FullName: "Jane <Doe>", Email: "jane@example.com"},
		Snapshot: models.OrderSnapshot{
			OrderID:       "order-1",
			Items:         []models.OrderItem{{ID: "rose-geranium", Name: "Rose Geranium Bar", Quantity: 2, Price: decimal.NewFromInt(18)}},
			Total:         decimal.NewNullDecimal(decimal.RequireFromString("48.38")),
			PaymentMethod: "Mobile Banking (MPESA)",
			TransactionID: "MPESA-ABC123-LOYW3V28",
		},
		Message: "New Order – Mobile Banking",
	}
}

func TestEmailService_OrderPlaced(t *testing.T) {
	m := &mailerMock{}
	es := newEmailService(m, nil)

	require.NoError(t, es.OrderPlaced(context.Background(), placedOrder()))
	require.Len(t, m.sent, 1)

	sent := m.sent[0]
	assert.Equal(t, "jane@example.com", sent.to)
	assert.Equal(t, "Order Confirmation (MPESA-ABC123-LOYW3V28)", sent.subject)
	assert.Contains(t, sent.html, "Jane &lt;Doe&gt;")
	assert.Contains(t, sent.html, "$48.38")
	assert.Contains(t, sent.text, "New Order – Mobile Banking")
}

func TestEmailService_Disabled(t *testing.T) {
	es := NewDisabledEmailService()
	assert.False(t, es.Enabled())
	assert.ErrorIs(t, es.OrderPlaced(context.Background(), placedOrder()), checkout.ErrNotifierDisabled)
}

func TestEmailService_BreakerOpensAfterFailures(t *testing.T) {
	m := &mailerMock{err: errors.New("provider down")}
	es := newEmailService(m, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := es.OrderPlaced(ctx, placedOrder())
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	m.err = nil
	err := es.OrderPlaced(ctx, placedOrder())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Empty(t, m.sent)
}
