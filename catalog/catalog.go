// Package catalog serves the product list. It is filled once at startup and is
// read-only afterwards.
package catalog

import (
	"dira-storefront/apperr"
	"dira-storefront/models"
)

// Catalog is an immutable, ordered product list
type Catalog struct {
	products []models.Product
	byID     map[string]int
}

// New builds a catalog from products, keeping their order
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// All returns every product in catalog order
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id
func (c *Catalog) Get(id string) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, &apperr.NotFoundError{Resource: "product", ID: id}
	}
	return c.products[i], nil
}

// ByCollection returns the products tagged with collection
func (c *Catalog) ByCollection(collection models.Collection) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Collection == collection {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products shown on the landing page
func (c *Catalog) Featured() []models.Product {
	return c.ByCollection(models.CollectionSignature)
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}
