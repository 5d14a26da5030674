// Package shop applies per-product stock limits on top of the cart.
package shop

import (
	"dira-storefront/apperr"
	"dira-storefront/cart"
	"dira-storefront/catalog"
	"dira-storefront/models"
)

// Item is one product of the listing with its availability for the viewer
type Item struct {
	models.Product
	InCart    int  `json:"in_cart"`
	Remaining *int `json:"remaining,omitempty"` // nil = unlimited
	SoldOut   bool `json:"sold_out"`
}

// Section groups listing items by collection
type Section struct {
	Collection models.Collection `json:"collection"`
	Items      []Item            `json:"items"`
}

// Remaining returns how many more units of p may be added to c, or -1 when
// the product has no stock ceiling.
func Remaining(c *cart.Cart, p models.Product) int {
	if p.Unlimited() {
		return -1
	}
	left := *p.Stock - c.Quantity(p.ID)
	if left < 0 {
		return 0
	}
	return left
}

// AddToCart adds up to requested units of p, clamped to the remaining stock.
// A sold-out product is refused whatever the requested quantity.
func AddToCart(c *cart.Cart, p models.Product, requested int) (int, error) {
	if requested < 1 {
		requested = 1
	}
	if p.SoldOut() {
		return 0, apperr.ErrOutOfStock
	}

	n := requested
	if left := Remaining(c, p); left >= 0 {
		if left == 0 {
			return 0, apperr.ErrOutOfStock
		}
		if n > left {
			n = left
		}
	}

	for i := 0; i < n; i++ {
		c.Add(p)
	}
	return n, nil
}

// CanIncrement reports whether one more unit of p fits in c
func CanIncrement(c *cart.Cart, p models.Product) bool {
	left := Remaining(c, p)
	return left != 0
}

func item(c *cart.Cart, p models.Product) Item {
	it := Item{Product: p, InCart: c.Quantity(p.ID)}
	if left := Remaining(c, p); left >= 0 {
		it.Remaining = &left
		it.SoldOut = left == 0
	}
	return it
}

// Listing returns the catalog grouped by collection, signature first
func Listing(cat *catalog.Catalog, c *cart.Cart) []Section {
	order := []models.Collection{models.CollectionSignature, models.CollectionSeasonal, models.CollectionNone}
	var sections []Section
	for _, collection := range order {
		products := cat.ByCollection(collection)
		if len(products) == 0 {
			continue
		}
		s := Section{Collection: collection}
		for _, p := range products {
			s.Items = append(s.Items, item(c, p))
		}
		sections = append(sections, s)
	}
	return sections
}

// Describe returns the availability of a single product for c
func Describe(c *cart.Cart, p models.Product) Item {
	return item(c, p)
}
