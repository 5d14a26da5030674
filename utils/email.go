// utils/email.go
package utils

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"dira-storefront/checkout"
	"dira-storefront/models"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// mailer delivers one message through a provider
type mailer interface {
	send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type postmarkMailer struct {
	client *postmark.Client
	from   string
}

func (m *postmarkMailer) send(_ context.Context, to, subject, htmlBody, textBody string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: textBody,
		Tag:      "order-confirmation",
	})
	return err
}

type sendgridMailer struct {
	client *sendgrid.Client
	from   string
}

func (m *sendgridMailer) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := mail.NewSingleEmail(mail.NewEmail("Dira", m.from), subject, mail.NewEmail("", to), textBody, htmlBody)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// EmailService sends order confirmations to customers. A nil mailer means
// email is switched off.
type EmailService struct {
	// Currency prefixes amounts in the email body
	Currency string

	mailer  mailer
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *zap.Logger
}

// NewPostmarkEmailService sends through Postmark
func NewPostmarkEmailService(apiToken, sender string, logger *zap.Logger) *EmailService {
	return newEmailService(&postmarkMailer{client: postmark.NewClient(apiToken, ""), from: sender}, logger)
}

// NewSendGridEmailService sends through SendGrid
func NewSendGridEmailService(apiKey, sender string, logger *zap.Logger) *EmailService {
	return newEmailService(&sendgridMailer{client: sendgrid.NewSendClient(apiKey), from: sender}, logger)
}

// NewDisabledEmailService returns a service that sends nothing
func NewDisabledEmailService() *EmailService {
	return &EmailService{logger: zap.NewNop()}
}

func newEmailService(m mailer, logger *zap.Logger) *EmailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "email",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &EmailService{Currency: "$", mailer: m, breaker: breaker, logger: logger}
}

// Enabled reports whether a provider is configured
func (es *EmailService) Enabled() bool {
	return es.mailer != nil
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	if !es.Enabled() {
		return checkout.ErrNotifierDisabled
	}
	_, err := es.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, es.mailer.send(ctx, toEmail, subject, htmlContent, textContent)
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// OrderPlaced sends the order confirmation email to the customer
func (es *EmailService) OrderPlaced(ctx context.Context, order models.PlacedOrder) error {
	if !es.Enabled() {
		return checkout.ErrNotifierDisabled
	}
	subject, htmlContent, textContent := OrderConfirmationEmail(es.Currency, order)
	if err := es.SendEmail(ctx, order.Customer.Email, subject, htmlContent, textContent); err != nil {
		return err
	}
	es.logger.Info("order confirmation email sent", zap.String("order_id", order.Snapshot.OrderID))
	return nil
}

// OrderConfirmationEmail renders the subject and bodies of the confirmation email
func OrderConfirmationEmail(currency string, order models.PlacedOrder) (subject, htmlContent, textContent string) {
	snap := order.Snapshot
	subject = "Order Confirmation"
	if snap.TransactionID != "" {
		subject = fmt.Sprintf("Order Confirmation (%s)", snap.TransactionID)
	}

	var items strings.Builder
	for _, item := range snap.Items {
		fmt.Fprintf(&items, "<li>%s × %d</li>", html.EscapeString(item.Name), item.Quantity)
	}
	htmlContent = fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! It has been received and is being processed.<br><ul>%s</ul>Total Amount: <strong>%s</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		html.EscapeString(order.Customer.FullName),
		items.String(),
		checkout.Money(currency, snap.Total.Decimal),
		html.EscapeString(snap.PaymentMethod),
	)
	textContent = fmt.Sprintf("Dear %s,\n\nThank you for your order!\n\n%s\n", order.Customer.FullName, order.Message)
	return subject, htmlContent, textContent
}
