package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreOrdering(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("prayers", "a", map[string]interface{}{"date": "2026-08-01T00:00:00Z"})
	s.Seed("prayers", "b", map[string]interface{}{"date": "2026-08-03T00:00:00Z"})
	s.Seed("prayers", "c", map[string]interface{}{"date": "2026-08-02T00:00:00Z"})

	asc, err := s.FetchAll(context.Background(), "prayers", Order{Field: "date", Direction: Asc})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids(asc))

	desc, err := s.FetchAll(context.Background(), "prayers", Order{Field: "date", Direction: Desc})
	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(desc))

	// zero Order keeps insertion order
	raw, err := s.FetchAll(context.Background(), "prayers", Order{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(raw))
}

func TestMemoryStoreCreateAndUpdate(t *testing.T) {
	s := NewMemoryStore()

	id := s.AllocateID("songs")
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, s.AllocateID("songs"))

	err := s.Create(context.Background(), "songs", id, map[string]interface{}{"title": "Abide", "tone": "D"})
	assert.NoError(t, err)

	err = s.Update(context.Background(), "songs", id, map[string]interface{}{"tone": "E"})
	assert.NoError(t, err)

	docs, _ := s.FetchAll(context.Background(), "songs", Order{})
	assert.Len(t, docs, 1)
	assert.Equal(t, "E", docs[0].Data["tone"])
	assert.Equal(t, "Abide", docs[0].Data["title"], "update touches only the named fields")

	err = s.Update(context.Background(), "songs", "missing", map[string]interface{}{"tone": "F"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestMemoryStoreFetchReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	s.Seed("members", "m1", map[string]interface{}{"city": "Fortaleza"})

	docs, _ := s.FetchAll(context.Background(), "members", Order{})
	docs[0].Data["city"] = "tampered"

	again, _ := s.FetchAll(context.Background(), "members", Order{})
	assert.Equal(t, "Fortaleza", again[0].Data["city"])
}

func TestMemoryStoreEmptyCollection(t *testing.T) {
	s := NewMemoryStore()
	docs, err := s.FetchAll(context.Background(), "meetings", Order{Field: "date", Direction: Asc})
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func ids(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}
