package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreStore backs the Store contract with Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) FetchAll(ctx context.Context, collection string, order Order) ([]Document, error) {
	q := s.client.Collection(collection).Query
	if order.Field != "" {
		dir := firestore.Asc
		if order.Direction == Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(order.Field, dir)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: fetching %s: %v", ErrStoreUnavailable, collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// AllocateID reserves a document id locally; Firestore generates these
// client-side without a round trip.
func (s *FirestoreStore) AllocateID(collection string) string {
	return s.client.Collection(collection).NewDoc().ID
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, id string, doc map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		return fmt.Errorf("%w: creating in %s: %v", ErrStoreUnavailable, collection, err)
	}
	return nil
}

// Update overwrites the named fields only; the rest of the document is
// left untouched.
func (s *FirestoreStore) Update(ctx context.Context, collection string, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("%w: updating %s/%s: %v", ErrStoreUnavailable, collection, id, err)
	}
	return nil
}
