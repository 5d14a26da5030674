package checkout

import (
	"fmt"
	"strings"

	"dira-storefront/models"

	"github.com/shopspring/decimal"
)

// Money formats an amount with two decimals for display
func Money(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// PaymentDescription is the human readable payment method
func PaymentDescription(method models.PaymentMethod, wallet models.Wallet) string {
	if method == models.PaymentMobile {
		return fmt.Sprintf("Mobile Banking (%s)", strings.ToUpper(string(wallet)))
	}
	return "Pay on Delivery"
}

func deliveryDescription(method models.DeliveryMethod) string {
	if method == models.DeliveryPickup {
		return "Store Pickup"
	}
	return "Home Delivery"
}

// ComposeMessage renders the order summary sent to the shop
func ComposeMessage(symbol string, form models.CheckoutForm, snap *models.OrderSnapshot, wallet models.Wallet) string {
	header := "New Order – Pay on Delivery"
	if form.PaymentMethod == models.PaymentMobile {
		header = "New Order – Mobile Banking"
	}

	lines := []string{
		header,
		"Customer: " + form.FullName,
		"Email: " + form.Email,
	}
	if snap.DeliveryMethod == models.DeliveryPickup {
		lines = append(lines, "Pickup: "+deliveryDescription(snap.DeliveryMethod))
	} else {
		lines = append(lines, fmt.Sprintf("Address: %s, %s, %s %s", form.Address, form.City, form.Region, form.PostalCode))
	}

	lines = append(lines, "", "Items:")
	for _, item := range snap.Items {
		lines = append(lines, fmt.Sprintf("%s × %d — %s", item.Name, item.Quantity, Money(symbol, item.LineTotal())))
	}

	lines = append(lines, "", "Subtotal: "+Money(symbol, snap.Subtotal.Decimal))
	if snap.PromoDiscount.Decimal.IsPositive() {
		label := "Discount"
		if snap.PromoCode != "" {
			label = fmt.Sprintf("Discount (%s)", snap.PromoCode)
		}
		lines = append(lines, fmt.Sprintf("%s: -%s", label, Money(symbol, snap.PromoDiscount.Decimal)))
	}
	if snap.DeliveryMethod == models.DeliveryPickup {
		lines = append(lines, "Pickup: Free")
	} else {
		lines = append(lines, "Delivery: "+Money(symbol, snap.DeliveryFee.Decimal))
	}
	lines = append(lines,
		"VAT: "+Money(symbol, snap.VAT.Decimal),
		"Total: "+Money(symbol, snap.Total.Decimal),
		"Payment Method: "+snap.PaymentMethod,
		"Delivery Method: "+deliveryDescription(snap.DeliveryMethod),
	)
	if form.PaymentMethod == models.PaymentMobile {
		lines = append(lines,
			"Wallet: "+strings.ToUpper(string(wallet)),
			"Transaction ID: "+snap.TransactionID,
		)
	}
	return strings.Join(lines, "\n")
}
