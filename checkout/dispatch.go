package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// PlaceholderPrefix marks a shop number that was never filled in
const PlaceholderPrefix = "REPLACE_WITH"

// Dispatcher hands a composed order message to the shop. It returns the link
// the shopper's browser has to open; delivery itself is not observable.
type Dispatcher interface {
	Dispatch(ctx context.Context, phone, message string) (string, error)
}

// WhatsAppDispatcher builds wa.me deep links
type WhatsAppDispatcher struct {
	BaseURL string
}

func NewWhatsAppDispatcher() *WhatsAppDispatcher {
	return &WhatsAppDispatcher{BaseURL: "https://wa.me"}
}

func (d *WhatsAppDispatcher) Dispatch(ctx context.Context, phone, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return BuildWhatsAppLink(d.BaseURL, phone, message), nil
}

// BuildWhatsAppLink returns base/phone?text=<message> with the message
// percent-encoded the way browsers encode URI components.
func BuildWhatsAppLink(base, phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(base, "/"), phone, text)
}

// PhoneConfigured reports whether phone is a usable digits-only number
func PhoneConfigured(phone string) bool {
	if phone == "" || strings.HasPrefix(phone, PlaceholderPrefix) {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
