package catalog

import (
	"context"
	"fmt"

	"dira-storefront/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDocument is the stored shape of a product in the products collection
type productDocument struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	Image       string  `bson:"image"`
	Alt         string  `bson:"alt,omitempty"`
	Collection  string  `bson:"collection,omitempty"`
	Stock       *int    `bson:"stock,omitempty"`
	StockLabel  string  `bson:"stock_label,omitempty"`
	Position    int     `bson:"position"`
}

func (d productDocument) product() models.Product {
	return models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Image:       d.Image,
		Alt:         d.Alt,
		Collection:  models.Collection(d.Collection),
		Stock:       d.Stock,
		StockLabel:  d.StockLabel,
	}
}

func documentFor(p models.Product, position int) productDocument {
	price, _ := p.Price.Float64()
	return productDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Image:       p.Image,
		Alt:         p.Alt,
		Collection:  string(p.Collection),
		Stock:       p.Stock,
		StockLabel:  p.StockLabel,
		Position:    position,
	}
}

// LoadFromMongo reads every product of collection ordered by position.
// An empty collection yields the built-in catalog.
func LoadFromMongo(ctx context.Context, collection *mongo.Collection) (*Catalog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, doc.product())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	if len(products) == 0 {
		return Default(), nil
	}
	return New(products), nil
}

// SeedMongo upserts the products of c into collection, keeping catalog order
func SeedMongo(ctx context.Context, collection *mongo.Collection, c *Catalog) error {
	for i, p := range c.All() {
		doc := documentFor(p, i)
		_, err := collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}
	return nil
}
