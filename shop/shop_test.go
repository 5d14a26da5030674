package shop

import (
	"testing"

	"dira-storefront/apperr"
	"dira-storefront/cart"
	"dira-storefront/catalog"
	"dira-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, id string) models.Product {
	t.Helper()
	p, err := catalog.Default().Get(id)
	require.NoError(t, err)
	return p
}

func TestAddToCart_SoldOutNeverAdded(t *testing.T) {
	honey := mustGet(t, "honey-oat")
	for _, qty := range []int{-3, 0, 1, 5, 1000} {
		c := cart.New()
		n, err := AddToCart(c, honey, qty)
		assert.ErrorIs(t, err, apperr.ErrOutOfStock)
		assert.Zero(t, n)
		assert.True(t, c.IsEmpty())
		assert.False(t, c.IsOpen())
	}
}

func TestAddToCart_ClampsToRemainingStock(t *testing.T) {
	pine := mustGet(t, "winter-pine")
	c := cart.New()

	n, err := AddToCart(c, pine, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = AddToCart(c, pine, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, c.Quantity("winter-pine"))

	_, err = AddToCart(c, pine, 1)
	assert.ErrorIs(t, err, apperr.ErrOutOfStock)
	assert.Equal(t, 3, c.Quantity("winter-pine"))
	assert.False(t, CanIncrement(c, pine))
}

func TestAddToCart_UnlimitedAndOpensCart(t *testing.T) {
	rose := mustGet(t, "rose-geranium")
	c := cart.New()

	n, err := AddToCart(c, rose, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, c.IsOpen())

	n, err = AddToCart(c, rose, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
	assert.Equal(t, 41, c.Quantity("rose-geranium"))
	assert.True(t, CanIncrement(c, rose))
	assert.Equal(t, -1, Remaining(c, rose))
}

func TestListing(t *testing.T) {
	c := cart.New()
	_, err := AddToCart(c, mustGet(t, "winter-pine"), 1)
	require.NoError(t, err)

	sections := Listing(catalog.Default(), c)
	require.Len(t, sections, 2)
	assert.Equal(t, models.CollectionSignature, sections[0].Collection)
	assert.Len(t, sections[0].Items, 4)
	assert.Equal(t, models.CollectionSeasonal, sections[1].Collection)

	byID := map[string]Item{}
	for _, it := range sections[1].Items {
		byID[it.ID] = it
	}
	require.NotNil(t, byID["winter-pine"].Remaining)
	assert.Equal(t, 2, *byID["winter-pine"].Remaining)
	assert.Equal(t, 1, byID["winter-pine"].InCart)
	assert.True(t, byID["honey-oat"].SoldOut)
	assert.Nil(t, byID["spiced-orange"].Remaining)
	assert.False(t, byID["spiced-orange"].SoldOut)
}
