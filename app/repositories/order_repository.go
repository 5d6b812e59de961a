package repositories

import (
	"context"

	"github.com/newtonbotics/labstore/app/models"
	"github.com/newtonbotics/labstore/pkg/store"
)

// OrderCollection is the document store collection holding orders.
const OrderCollection = "order"

// OrderRepository handles document store operations for orders.
type OrderRepository struct {
	store store.Store
}

func NewOrderRepository(s store.Store) *OrderRepository {
	return &OrderRepository{store: s}
}

// Create stores an order and returns its generated identifier.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (string, error) {
	return r.store.Insert(ctx, OrderCollection, o)
}
