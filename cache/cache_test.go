package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Burgamansi/CarmoPlusUltra/models"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// flakyStore fails FetchAll for chosen collections and delegates the
// rest to a memory store.
type flakyStore struct {
	*store.MemoryStore
	failing map[string]bool
}

func (s *flakyStore) FetchAll(ctx context.Context, collection string, order store.Order) ([]store.Document, error) {
	if s.failing[collection] {
		return nil, fmt.Errorf("%w: simulated outage", store.ErrStoreUnavailable)
	}
	return s.MemoryStore.FetchAll(ctx, collection, order)
}

func seededStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	s.Seed("members", "m1", map[string]interface{}{
		"husband_name": "João", "wife_name": "Maria", "city": "Fortaleza",
	})
	s.Seed("members", "m2", map[string]interface{}{
		"husband_name": "Pedro", "wife_name": "Ana", "city": "Fortaleza",
	})
	s.Seed("songs", "s1", map[string]interface{}{
		"title": "Be Still", "category": "Adoration",
	})
	s.Seed("prayers", "p1", map[string]interface{}{
		"name": "Clara", "request_text": "For my mother", "category": "Health",
		"date": "2026-08-01T10:00:00Z", "likes": float64(3),
	})
	s.Seed("liturgy", "l1", map[string]interface{}{
		"date": "2026-08-30T00:00:00Z", "gospel": "Mt 5", "reflection": "older",
	})
	s.Seed("liturgy", "l2", map[string]interface{}{
		"date": "2026-08-31T00:00:00Z", "gospel": "Lk 14", "reflection": "newest",
	})
	return s
}

func TestInitializeLoadsAllCollections(t *testing.T) {
	c := New()
	assert.False(t, c.Ready())

	c.Initialize(context.Background(), seededStore())

	assert.True(t, c.Ready())
	assert.Len(t, c.Members(), 2)
	assert.Len(t, c.Meetings(), 0)
	assert.Len(t, c.Songs(), 1)
	assert.Len(t, c.Prayers(), 1)

	liturgy, ok := c.Liturgy()
	assert.True(t, ok)
	assert.Equal(t, "newest", liturgy.Reflection, "only the most recent liturgy is held")
}

func TestInitializeIsIdempotent(t *testing.T) {
	c := New()
	s := seededStore()

	c.Initialize(context.Background(), s)
	first := c.Members()

	c.Initialize(context.Background(), s)
	assert.Equal(t, first, c.Members(), "reloading must not duplicate entries")
	assert.Len(t, c.Prayers(), 1)
}

func TestInitializePartialFailureIsolation(t *testing.T) {
	s := &flakyStore{MemoryStore: seededStore(), failing: map[string]bool{"songs": true}}

	c := New()
	c.Initialize(context.Background(), s)

	assert.True(t, c.Ready(), "one broken collection must not block readiness")
	assert.Len(t, c.Songs(), 0, "failed collection is left empty")
	assert.Len(t, c.Members(), 2, "other collections still load")
	assert.Len(t, c.Prayers(), 1)
}

func TestByIDLookups(t *testing.T) {
	c := New()
	c.Initialize(context.Background(), seededStore())

	member, ok := c.MemberByID("m1")
	assert.True(t, ok)
	assert.Equal(t, "João", member.Husband_Name)

	_, ok = c.MemberByID("missing")
	assert.False(t, ok, "a miss is absence, never a panic or error")

	_, ok = c.SongByID("s2")
	assert.False(t, ok)
}

func TestHostResolutionForMeetings(t *testing.T) {
	c := New()
	c.Initialize(context.Background(), seededStore())

	c.AddMeeting(models.Meeting{
		Meeting_ID:     "mt1",
		Date:           "2026-09-05T19:30:00Z",
		Host_Couple_ID: "m1",
	})

	assert.Len(t, c.Meetings(), 1)
	meeting, ok := c.MeetingByID("mt1")
	assert.True(t, ok)

	host, ok := c.MemberByID(meeting.Host_Couple_ID)
	assert.True(t, ok)
	assert.Equal(t, "m1", host.Member_ID)

	// host referencing a couple no longer in the directory
	c.AddMeeting(models.Meeting{Meeting_ID: "mt2", Date: "2026-09-12T19:30:00Z", Host_Couple_ID: "gone"})
	orphan, _ := c.MeetingByID("mt2")
	_, ok = c.MemberByID(orphan.Host_Couple_ID)
	assert.False(t, ok)
}

func TestSongsForDropsDanglingIDs(t *testing.T) {
	c := New()
	c.Initialize(context.Background(), seededStore())

	meeting := models.Meeting{Music_List: []string{"s1", "deleted-song", "s1"}}
	songs := c.SongsFor(meeting)

	assert.Len(t, songs, 2, "unresolvable ids vanish silently")
	assert.Equal(t, "Be Still", songs[0].Title)
}

func TestReplaceMeeting(t *testing.T) {
	c := New()
	c.AddMeeting(models.Meeting{Meeting_ID: "mt1", Address: "Old street"})

	ok := c.ReplaceMeeting(models.Meeting{Meeting_ID: "mt1", Address: "New street"})
	assert.True(t, ok)
	meeting, _ := c.MeetingByID("mt1")
	assert.Equal(t, "New street", meeting.Address)

	assert.False(t, c.ReplaceMeeting(models.Meeting{Meeting_ID: "nope"}), "replace miss is a no-op")
	assert.Len(t, c.Meetings(), 1)
}

func TestBumpPrayerLikesIsMonotonic(t *testing.T) {
	c := New()
	c.Initialize(context.Background(), seededStore())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := c.BumpPrayerLikes("p1")
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	prayer := c.Prayers()[0]
	assert.Equal(t, 3+n, prayer.Likes)

	_, ok := c.BumpPrayerLikes("missing")
	assert.False(t, ok)
}

func TestSetLiturgyReplacesWholesale(t *testing.T) {
	c := New()
	_, ok := c.Liturgy()
	assert.False(t, ok)

	c.SetLiturgy(models.DailyLiturgy{Liturgy_ID: "l9", Date: "2026-09-01T00:00:00Z", Gospel: "Jo 3"})
	liturgy, ok := c.Liturgy()
	assert.True(t, ok)
	assert.Equal(t, "Jo 3", liturgy.Gospel)

	// a later swap carries nothing over from the previous value
	c.SetLiturgy(models.DailyLiturgy{Liturgy_ID: "l10", Date: "2026-09-02T00:00:00Z"})
	liturgy, _ = c.Liturgy()
	assert.Equal(t, "", liturgy.Gospel)
}

func TestNextMeeting(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	c := New()
	c.AddMeeting(models.Meeting{Meeting_ID: "past", Date: "2026-08-20T19:30:00Z"})
	c.AddMeeting(models.Meeting{Meeting_ID: "later", Date: "2026-09-20T19:30:00Z"})
	c.AddMeeting(models.Meeting{Meeting_ID: "soon", Date: "2026-09-05T19:30:00Z"})
	c.AddMeeting(models.Meeting{Meeting_ID: "bad-date", Date: "next friday"})

	next, ok := c.NextMeeting(now)
	assert.True(t, ok)
	assert.Equal(t, "soon", next.Meeting_ID)

	_, ok = New().NextMeeting(now)
	assert.False(t, ok)
}

func TestPrependOrderForNewestFirstCollections(t *testing.T) {
	c := New()
	c.AddPrayer(models.PrayerRequest{Prayer_ID: "old"})
	c.AddPrayer(models.PrayerRequest{Prayer_ID: "new"})

	prayers := c.Prayers()
	assert.Equal(t, "new", prayers[0].Prayer_ID, "newest prayer surfaces first, matching fetch order")

	c.AddMedia(models.MediaItem{Media_ID: "a"})
	c.AddMedia(models.MediaItem{Media_ID: "b"})
	assert.Equal(t, "b", c.Media()[0].Media_ID)
}
