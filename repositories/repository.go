// Package repositories adapts the schemaless store documents to the
// typed entity kinds. Each accessor fixes its collection name, its
// fetch order, and how the store-generated id is injected into the
// decoded value. The id is never parsed from the payload; documents on
// the wire carry no identifier field at all.
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// Collection is the typed accessor for one entity kind. It adds no
// logic beyond decoding: the entity stream preserves store ordering.
type Collection[T any] struct {
	Name   string
	Order  store.Order
	IDKey  string
	WithID func(T, string) T
}

// FetchAll loads and decodes every document in the collection.
// Documents that fail to decode are logged and skipped rather than
// propagated as untyped data.
func (c Collection[T]) FetchAll(ctx context.Context, s store.Store) ([]T, error) {
	docs, err := s.FetchAll(ctx, c.Name, c.Order)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := decode[T](d.Data)
		if err != nil {
			log.Printf("repositories: skipping malformed %s document %s: %v", c.Name, d.ID, err)
			continue
		}
		out = append(out, c.WithID(v, d.ID))
	}
	return out, nil
}

// AllocateID reserves the durable identifier for a new entity.
func (c Collection[T]) AllocateID(s store.Store) string {
	return s.AllocateID(c.Name)
}

// Create writes the entity under the given id, stripped of its
// identifier field.
func (c Collection[T]) Create(ctx context.Context, s store.Store, id string, entity T) error {
	doc, err := c.Document(entity)
	if err != nil {
		return err
	}
	return s.Create(ctx, c.Name, id, doc)
}

// Replace overwrites every field of an existing document with the
// entity's current values.
func (c Collection[T]) Replace(ctx context.Context, s store.Store, id string, entity T) error {
	doc, err := c.Document(entity)
	if err != nil {
		return err
	}
	return s.Update(ctx, c.Name, id, doc)
}

// UpdateFields overwrites only the named fields.
func (c Collection[T]) UpdateFields(ctx context.Context, s store.Store, id string, fields map[string]interface{}) error {
	return s.Update(ctx, c.Name, id, fields)
}

// Document converts an entity to its remote shape: the JSON field map
// minus the identifier, which lives in the document path.
func (c Collection[T]) Document(entity T) (map[string]interface{}, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", c.Name, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", c.Name, err)
	}
	delete(doc, c.IDKey)
	return doc, nil
}

func decode[T any](data map[string]interface{}) (T, error) {
	var v T
	raw, err := json.Marshal(data)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}
