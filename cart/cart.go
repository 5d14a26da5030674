// Package cart keeps a shopper's line items and derives the cart total.
package cart

import (
	"dira-storefront/models"

	"github.com/shopspring/decimal"
)

// Cart holds at most one line per product id, in insertion order.
// A Cart is owned by a single session and is not safe for concurrent use.
type Cart struct {
	lines  []models.CartLine
	isOpen bool
}

// New returns an empty, closed cart
func New() *Cart {
	return &Cart{}
}

// Add increments the line for product.ID or appends a new line with quantity 1.
// The cart is opened as a side effect.
func (c *Cart) Add(product models.Product) {
	if i := c.index(product.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
	}
	c.isOpen = true
}

// Remove deletes the line for id, if present
func (c *Cart) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Increment raises the quantity of the line for id by one
func (c *Cart) Increment(id string) {
	if i := c.index(id); i >= 0 {
		c.lines[i].Quantity++
	}
}

// Decrement lowers the quantity of the line for id by one, removing the line
// when it reaches zero.
func (c *Cart) Decrement(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity <= 1 {
		c.Remove(id)
		return
	}
	c.lines[i].Quantity--
}

// Clear empties all lines
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) OpenCart()   { c.isOpen = true }
func (c *Cart) CloseCart()  { c.isOpen = false }
func (c *Cart) ToggleCart() { c.isOpen = !c.isOpen }

// IsOpen reports the visibility flag
func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// Lines returns a copy of the current lines
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the quantity held for id, 0 when absent
func (c *Cart) Quantity(id string) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count returns the number of units across all lines
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total is the sum of price × quantity over all lines. It is computed on every
// call so it always reflects the current lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// View returns the serializable state of the cart
func (c *Cart) View() models.CartView {
	return models.CartView{
		Items:  c.Lines(),
		IsOpen: c.isOpen,
		Total:  c.Total(),
		Count:  c.Count(),
	}
}

func (c *Cart) index(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
