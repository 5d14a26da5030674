package controllers

import (
	"net/http"

	"dira-storefront/apperr"
	"dira-storefront/cart"
	"dira-storefront/catalog"
	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/session"
	"dira-storefront/shop"

	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Catalog    *catalog.Catalog
	Translator *i18n.Translator
}

// NewCartController creates a new CartController
func NewCartController(cat *catalog.Catalog, translator *i18n.Translator) *CartController {
	return &CartController{Catalog: cat, Translator: translator}
}

// mutate applies fn to the session cart and replies with the resulting view
func (cc *CartController) mutate(w http.ResponseWriter, r *http.Request, fn func(c *cart.Cart) error) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var t func(string) string
	var view models.CartView
	err := s.Do(func(s *session.Session) error {
		t = cc.Translator.For(s.Language)
		if err := fn(s.Cart); err != nil {
			return err
		}
		view = s.Cart.View()
		return nil
	})
	if err != nil {
		handleError(w, t, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GetCart retrieves the session cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(*cart.Cart) error { return nil })
}

// IncrementItem adds one unit of a line unless the product's stock is reached
func (cc *CartController) IncrementItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cc.mutate(w, r, func(c *cart.Cart) error {
		if p, err := cc.Catalog.Get(id); err == nil && c.Quantity(id) > 0 && !shop.CanIncrement(c, p) {
			return apperr.ErrOutOfStock
		}
		c.Increment(id)
		return nil
	})
}

// DecrementItem removes one unit; the line goes away at zero
func (cc *CartController) DecrementItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.Decrement(id)
		return nil
	})
}

// RemoveFromCart removes a line from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.Remove(id)
		return nil
	})
}

func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (cc *CartController) OpenCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.OpenCart()
		return nil
	})
}

func (cc *CartController) CloseCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.CloseCart()
		return nil
	})
}

func (cc *CartController) ToggleCart(w http.ResponseWriter, r *http.Request) {
	cc.mutate(w, r, func(c *cart.Cart) error {
		c.ToggleCart()
		return nil
	})
}
