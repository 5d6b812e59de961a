package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/newtonbotics/labstore/app/models"
	"github.com/newtonbotics/labstore/pkg/store"
)

// ProductCollection is the document store collection holding products.
const ProductCollection = "product"

// ProductRepository handles document store operations for products.
type ProductRepository struct {
	store store.Store
}

func NewProductRepository(s store.Store) *ProductRepository {
	return &ProductRepository{store: s}
}

// Search returns up to limit products matching filter, as raw documents in
// the store's natural return order.
func (r *ProductRepository) Search(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	return r.store.Find(ctx, ProductCollection, filter, limit)
}

// Any reports whether the product collection contains at least one document.
func (r *ProductRepository) Any(ctx context.Context) (bool, error) {
	docs, err := r.store.Find(ctx, ProductCollection, bson.M{}, 1)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

// Insert stores a product and returns its generated identifier.
func (r *ProductRepository) Insert(ctx context.Context, p models.Product) (string, error) {
	return r.store.Insert(ctx, ProductCollection, p)
}
