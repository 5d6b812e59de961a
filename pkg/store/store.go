// Package store abstracts the document database behind the three operations
// the storefront needs: insert one document, find by filter with a result
// cap, and list collection names for diagnostics.
//
// Repositories receive a Store as an explicit dependency, so tests can
// substitute an in-memory fake for the Mongo implementation.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by Unavailable for every operation.
var ErrUnavailable = errors.New("store: document store unavailable")

// Store is the document store contract.
type Store interface {
	// Insert stores doc in the named collection and returns the generated
	// identifier as a string.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)

	// Find returns up to limit documents matching filter, in the store's
	// natural return order. A limit <= 0 means no cap.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// ListCollections returns the collection names present in the database.
	// Diagnostic only.
	ListCollections(ctx context.Context) ([]string, error)
}

// Unavailable is a Store placeholder used when the database could not be
// reached at startup. The process still serves traffic; every store-backed
// endpoint reports a server error and /test reports the degraded state.
type Unavailable struct{}

func (Unavailable) Insert(context.Context, string, interface{}) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Find(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, ErrUnavailable
}

func (Unavailable) ListCollections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}
