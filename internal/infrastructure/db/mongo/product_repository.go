package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

const productsCollection = "products"

func productCategoryIndex() mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}}
}

// ProductRepository is the read-only view over the catalog collection.
type ProductRepository struct {
	conn *Connector
}

func NewProductRepository(conn *Connector) *ProductRepository {
	return &ProductRepository{conn: conn}
}

type productDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Extra    map[string]any     `bson:",inline"`
}

func (d *productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Category: domain.Category(d.Category),
		Price:    d.Price,
		Extra:    d.Extra,
	}
}

// List executes a ListQuery. No sort stage is applied when SortField is
// empty, preserving the collection's natural order ("featured").
func (r *ProductRepository) List(ctx context.Context, query domain.ListQuery) ([]*domain.Product, error) {
	col, err := r.conn.Collection(productsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if query.Category != "" {
		filter["category"] = string(query.Category)
	}

	opts := options.Find()
	if query.SortField != "" {
		opts.SetSort(bson.D{{Key: query.SortField, Value: int(query.SortOrder)}})
	}
	if query.Skip > 0 {
		opts.SetSkip(query.Skip)
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	return products, cur.Err()
}

// FindByID returns one product. A malformed id is a client error,
// distinct from a well-formed id that matches nothing.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	col, err := r.conn.Collection(productsCollection)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}
