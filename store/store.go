// Package store abstracts the remote document database. Collections are
// schemaless; documents carry a store-generated opaque identifier that
// lives in the document path, never in the payload itself.
package store

import (
	"context"
	"errors"
)

// Direction orders a collection fetch on its sort field.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order is the per-collection sort applied by FetchAll. The zero Order
// (empty field) keeps the store's natural order.
type Order struct {
	Field     string
	Direction Direction
}

// Document is one raw record read from a collection.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// ErrStoreUnavailable wraps any network or service failure talking to
// the document store. Callers treat it as non-fatal: the user retries
// by re-triggering the action.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Store is the gateway to the remote document database.
//
// AllocateID hands out the durable identifier for a document before it
// is written; it never touches the network, which is what lets callers
// apply an optimistic local change carrying the real id while the
// Create call is still in flight.
type Store interface {
	FetchAll(ctx context.Context, collection string, order Order) ([]Document, error)
	AllocateID(collection string) string
	Create(ctx context.Context, collection string, id string, doc map[string]interface{}) error
	Update(ctx context.Context, collection string, id string, fields map[string]interface{}) error
}
