package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/app/services"
)

func newProductService(st *fakeStore) *services.ProductService {
	return services.NewProductService(repositories.NewProductRepository(st))
}

func TestSeedInsertsSamplesOnce(t *testing.T) {
	st := newFakeStore()
	svc := newProductService(st)

	inserted, alreadySeeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, alreadySeeded)
	assert.Equal(t, len(services.SampleProducts()), inserted)
	assert.Equal(t, inserted, st.insertCount(repositories.ProductCollection))

	// A second seed is a no-op: the guard is collection-level.
	inserted, alreadySeeded, err = svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, alreadySeeded)
	assert.Zero(t, inserted)
	assert.Equal(t, len(services.SampleProducts()), st.insertCount(repositories.ProductCollection))
}

func TestSeedSkippedWhenAnyProductExists(t *testing.T) {
	st := newFakeStore()
	st.preload(repositories.ProductCollection, bson.M{"_id": primitive.NewObjectID(), "title": "existing"})
	svc := newProductService(st)

	inserted, alreadySeeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, alreadySeeded)
	assert.Zero(t, inserted)
	assert.Zero(t, st.insertCount(repositories.ProductCollection))
}

func TestListAdaptsStoreIDs(t *testing.T) {
	st := newFakeStore()
	oid := primitive.NewObjectID()
	st.preload(repositories.ProductCollection,
		bson.M{"_id": oid, "title": "Precision Servo Mount", "price": 9.99},
		bson.M{"_id": "already-a-string", "title": "Panel Plate"},
	)
	svc := newProductService(st)

	items, err := svc.List(context.Background(), services.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, oid.Hex(), items[0]["id"])
	assert.Equal(t, "already-a-string", items[1]["id"])
	for _, item := range items {
		assert.NotContains(t, item, "_id")
	}
	assert.Equal(t, "Precision Servo Mount", items[0]["title"])
}

func TestListPassesFilterAndLimit(t *testing.T) {
	st := newFakeStore()
	svc := newProductService(st)

	_, err := svc.List(context.Background(), services.ProductQuery{Category: "electronics", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "electronics", st.lastFilter["category"])
	assert.EqualValues(t, 5, st.lastLimit)

	// Unset limit falls back to the default.
	_, err = svc.List(context.Background(), services.ProductQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, services.DefaultLimit, st.lastLimit)
}

func TestListPropagatesStoreError(t *testing.T) {
	st := newFakeStore()
	st.findErr = errors.New("connection reset")
	svc := newProductService(st)

	_, err := svc.List(context.Background(), services.ProductQuery{})
	require.Error(t, err)
}
