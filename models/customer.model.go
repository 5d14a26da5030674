package models

// DeliveryMethod is how the order reaches the customer
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "delivery"
	DeliveryPickup DeliveryMethod = "pickup"
)

// Valid reports whether m is a known delivery method
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryHome || m == DeliveryPickup
}

// PaymentMethod is "cod" (pay on delivery) or "mobile" (mobile banking)
type PaymentMethod string

const (
	PaymentOnDelivery PaymentMethod = "cod"
	PaymentMobile     PaymentMethod = "mobile"
)

// Wallet is the mobile money provider chosen under mobile banking
type Wallet string

const (
	WalletAirtel Wallet = "airtel"
	WalletTigo   Wallet = "tigo"
	WalletMpesa  Wallet = "mpesa"
)

// CheckoutForm is the order form submitted at checkout
type CheckoutForm struct {
	FullName       string         `json:"full_name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Address        string         `json:"address" validate:"required_if=DeliveryMethod delivery"`
	City           string         `json:"city" validate:"required_if=DeliveryMethod delivery"`
	Region         string         `json:"region" validate:"required_if=DeliveryMethod delivery"`
	PostalCode     string         `json:"postal_code" validate:"required_if=DeliveryMethod delivery"`
	DeliveryMethod DeliveryMethod `json:"delivery_method" validate:"omitempty,oneof=delivery pickup"`
	PaymentMethod  PaymentMethod  `json:"payment_method" validate:"required,oneof=cod mobile"`
	Wallet         Wallet         `json:"wallet,omitempty" validate:"omitempty,oneof=airtel tigo mpesa"`
}

// Delivering reports whether the form ships to an address
func (f CheckoutForm) Delivering() bool {
	return f.DeliveryMethod != DeliveryPickup
}
