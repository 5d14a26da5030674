package catalog

import (
	"dira-storefront/models"

	"github.com/shopspring/decimal"
)

func stock(n int) *int { return &n }

// Default returns the built-in product list
func Default() *Catalog {
	return New([]models.Product{
		{
			ID:          "rose-geranium",
			Name:        "Rose Geranium Bar",
			Description: "Silken lather with uplifting rose geranium and gentle clays.",
			Price:       decimal.NewFromInt(18),
			Image:       "/assets/product-rose-geranium.jpg",
			Alt:         "Rose Geranium handmade soap bar on warm neutral backdrop",
			Collection:  models.CollectionSignature,
		},
		{
			ID:          "citrus-basil",
			Name:        "Citrus Basil Bar",
			Description: "Bright citrus oils balanced with herbaceous basil for a clean finish.",
			Price:       decimal.NewFromInt(16),
			Image:       "/assets/product-citrus-basil.jpg",
			Alt:         "Citrus Basil handmade soap bar with zest flecks and basil leaf",
			Collection:  models.CollectionSignature,
		},
		{
			ID:          "lavender-oat",
			Name:        "Lavender Oat Bar",
			Description: "Soothing lavender with oat for a calm, creamy cleanse.",
			Price:       decimal.NewFromInt(16),
			Image:       "/assets/product-lavender-oat.jpg",
			Alt:         "Lavender Oat handmade soap bar with oat speckles and lavender sprigs",
			Collection:  models.CollectionSignature,
		},
		{
			ID:          "charcoal-detox",
			Name:        "Charcoal Detox Bar",
			Description: "Purifying activated charcoal with a crisp, spa-like aroma.",
			Price:       decimal.NewFromInt(17),
			Image:       "/assets/product-charcoal-detox.jpg",
			Alt:         "Charcoal Detox handmade soap bar with minimal label",
			Collection:  models.CollectionSignature,
		},
		{
			ID:          "winter-pine",
			Name:        "Winter Pine Bar",
			Description: "Fresh pine and eucalyptus for a crisp, invigorating cleanse.",
			Price:       decimal.NewFromInt(19),
			Image:       "/assets/product-charcoal-detox.jpg",
			Alt:         "Winter Pine handmade soap bar with forest green tones",
			Collection:  models.CollectionSeasonal,
			Stock:       stock(3),
			StockLabel:  "Only 3 left",
		},
		{
			ID:          "honey-oat",
			Name:        "Honey & Oat Bar",
			Description: "Nourishing honey blended with creamy oats for sensitive skin.",
			Price:       decimal.NewFromInt(18),
			Image:       "/assets/product-lavender-oat.jpg",
			Alt:         "Honey Oat handmade soap bar with golden hues",
			Collection:  models.CollectionSeasonal,
			Stock:       stock(0),
			StockLabel:  "Out of stock",
		},
		{
			ID:          "spiced-orange",
			Name:        "Spiced Orange Bar",
			Description: "Warm cinnamon and sweet orange for cozy winter mornings.",
			Price:       decimal.NewFromInt(17),
			Image:       "/assets/product-citrus-basil.jpg",
			Alt:         "Spiced Orange handmade soap bar with orange zest",
			Collection:  models.CollectionSeasonal,
		},
	})
}
