package utils

import (
	"context"
	"encoding/json"
	"time"

	"dira-storefront/checkout"
	"dira-storefront/models"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const OrderPlacedEventType = "order.placed"

// OrderPlacedEvent is published for every dispatched order
type OrderPlacedEvent struct {
	EventID        string                `json:"event_id"`
	Type           string                `json:"type"`
	OccurredAt     time.Time             `json:"occurred_at"`
	OrderID        string                `json:"order_id"`
	SessionID      string                `json:"session_id"`
	Items          []models.OrderItem    `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	PromoCode      string                `json:"promo_code,omitempty"`
	Discount       decimal.Decimal       `json:"discount"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethod  string                `json:"payment_method"`
	TransactionID  string                `json:"transaction_id,omitempty"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEvents publishes order events to Kafka. Without brokers it is disabled.
type OrderEvents struct {
	writer messageWriter
}

// NewOrderEvents returns a publisher writing to topic on brokers
func NewOrderEvents(brokers []string, topic string) *OrderEvents {
	if len(brokers) == 0 {
		return &OrderEvents{}
	}
	return &OrderEvents{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}
}

func (e *OrderEvents) Enabled() bool {
	return e.writer != nil
}

// OrderPlaced publishes order keyed by its order id
func (e *OrderEvents) OrderPlaced(ctx context.Context, order models.PlacedOrder) error {
	if !e.Enabled() {
		return checkout.ErrNotifierDisabled
	}
	snap := order.Snapshot
	event := OrderPlacedEvent{
		EventID:        uuid.NewString(),
		Type:           OrderPlacedEventType,
		OccurredAt:     time.Now().UTC(),
		OrderID:        snap.OrderID,
		SessionID:      order.SessionID,
		Items:          snap.Items,
		Subtotal:       snap.Subtotal.Decimal,
		PromoCode:      snap.PromoCode,
		Discount:       snap.PromoDiscount.Decimal,
		DeliveryMethod: snap.DeliveryMethod,
		Total:          snap.Total.Decimal,
		PaymentMethod:  snap.PaymentMethod,
		TransactionID:  snap.TransactionID,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snap.OrderID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(OrderPlacedEventType)},
		},
	})
}

// Close flushes pending writes
func (e *OrderEvents) Close() error {
	if !e.Enabled() {
		return nil
	}
	return e.writer.Close()
}
