// Package apperr holds the error kinds the storefront reports to shoppers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")
	// ErrWalletRequired is returned when mobile banking is chosen without a wallet
	ErrWalletRequired = errors.New("select a wallet: Airtel Money, Tigo Pesa or MPesa")
	// ErrInvalidPromo is returned for codes missing from the promo table
	ErrInvalidPromo = errors.New("invalid code")
	// ErrOutOfStock is returned when no more units of a product can be added
	ErrOutOfStock = errors.New("out of stock")
)

// ValidationError is returned when a submitted form is incomplete
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ConfigError is returned when the deployment lacks a required setting
type ConfigError struct {
	Setting string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Setting, e.Message)
	}
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// NotFoundError is returned when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsValidation reports whether err is recoverable by correcting user input
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrWalletRequired) ||
		errors.Is(err, ErrInvalidPromo) ||
		errors.Is(err, ErrEmptyCart)
}
