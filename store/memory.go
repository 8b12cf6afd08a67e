package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory. It backs tests and
// local development when no Firestore project is configured. Documents
// keep insertion order; FetchAll sorts a copy when an Order is given.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// Seed inserts a document with a fixed id, bypassing id allocation.
// Intended for tests and dev fixtures.
func (s *MemoryStore) Seed(collection string, id string, doc map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Data: doc})
}

func (s *MemoryStore) FetchAll(_ context.Context, collection string, order Order) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]Document, len(s.collections[collection]))
	for i, d := range s.collections[collection] {
		docs[i] = Document{ID: d.ID, Data: copyMap(d.Data)}
	}

	if order.Field != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			a, b := docs[i].Data[order.Field], docs[j].Data[order.Field]
			if order.Direction == Desc {
				a, b = b, a
			}
			return compareValues(a, b)
		})
	}
	return docs, nil
}

func (s *MemoryStore) AllocateID(string) string {
	return uuid.NewString()
}

func (s *MemoryStore) Create(_ context.Context, collection string, id string, doc map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Data: copyMap(doc)})
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection string, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.collections[collection] {
		if d.ID == id {
			for k, v := range fields {
				s.collections[collection][i].Data[k] = v
			}
			return nil
		}
	}
	return fmt.Errorf("%w: no document %s/%s", ErrStoreUnavailable, collection, id)
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// compareValues orders the sortable field types the app actually
// stores: RFC 3339 date strings, titles, and counters.
func compareValues(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
