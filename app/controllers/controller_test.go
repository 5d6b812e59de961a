package controllers_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/pkg/store"
)

// fakeStore is the in-memory store.Store backing the handler tests.
type fakeStore struct {
	mu       sync.Mutex
	docs     map[string][]bson.M
	inserted map[string][]interface{}
	findErr  error
}

var _ store.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:     make(map[string][]bson.M),
		inserted: make(map[string][]interface{}),
	}
}

func (f *fakeStore) Insert(_ context.Context, collection string, doc interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := primitive.NewObjectID()
	f.inserted[collection] = append(f.inserted[collection], doc)
	f.docs[collection] = append(f.docs[collection], bson.M{"_id": id})
	return id.Hex(), nil
}

func (f *fakeStore) Find(_ context.Context, collection string, _ bson.M, limit int64) ([]bson.M, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return nil, f.findErr
	}

	docs := f.docs[collection]
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	out := make([]bson.M, len(docs))
	copy(out, docs)
	return out, nil
}

func (f *fakeStore) ListCollections(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeStore) insertCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted[collection])
}

func (f *fakeStore) preload(collection string, docs ...bson.M) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[collection] = append(f.docs[collection], docs...)
}

func newProductService(st *fakeStore) *services.ProductService {
	return services.NewProductService(repositories.NewProductRepository(st))
}

func newOrderService(st *fakeStore) *services.OrderService {
	return services.NewOrderService(repositories.NewOrderRepository(st))
}
