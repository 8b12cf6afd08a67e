// Package cache holds the session-lifetime, in-memory copy of every
// domain collection. It is the only component that retains entity
// state; everything else reads through its accessors. Mutations flow
// exclusively through the services layer — that contract is enforced
// by convention, the way the rest of the app is wired, not by the
// type system.
package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Burgamansi/CarmoPlusUltra/models"
	"github.com/Burgamansi/CarmoPlusUltra/repositories"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// Cache is the in-memory domain store. An RWMutex keeps every mutation
// a single atomic step, so an optimistic change is fully visible to
// any read that starts after the mutating call returns.
type Cache struct {
	mu    sync.RWMutex
	ready bool

	members   []models.Member
	meetings  []models.Meeting
	songs     []models.Song
	prayers   []models.PrayerRequest
	media     []models.MediaItem
	feedbacks []models.Feedback

	liturgy    models.DailyLiturgy
	hasLiturgy bool
}

func New() *Cache {
	return &Cache{}
}

// Initialize bulk-loads all seven collections concurrently and waits
// for every fetch to settle. A failed fetch leaves that one collection
// empty and is logged; the cache still becomes ready, because a broken
// songs fetch must not stop anyone from viewing members. Calling
// Initialize again replaces the collections wholesale, so a reload
// never duplicates entries.
func (c *Cache) Initialize(ctx context.Context, s store.Store) {
	var (
		members   []models.Member
		meetings  []models.Meeting
		songs     []models.Song
		prayers   []models.PrayerRequest
		liturgies []models.DailyLiturgy
		media     []models.MediaItem
		feedbacks []models.Feedback
	)

	var wg sync.WaitGroup
	load := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				log.Printf("cache: loading %s failed, collection left empty: %v", name, err)
			}
		}()
	}

	load("members", func() (err error) {
		members, err = repositories.Members.FetchAll(ctx, s)
		return
	})
	load("meetings", func() (err error) {
		meetings, err = repositories.Meetings.FetchAll(ctx, s)
		return
	})
	load("songs", func() (err error) {
		songs, err = repositories.Songs.FetchAll(ctx, s)
		return
	})
	load("prayers", func() (err error) {
		prayers, err = repositories.Prayers.FetchAll(ctx, s)
		return
	})
	load("liturgy", func() (err error) {
		liturgies, err = repositories.Liturgies.FetchAll(ctx, s)
		return
	})
	load("media", func() (err error) {
		media, err = repositories.Media.FetchAll(ctx, s)
		return
	})
	load("feedbacks", func() (err error) {
		feedbacks, err = repositories.Feedbacks.FetchAll(ctx, s)
		return
	})
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = members
	c.meetings = meetings
	c.songs = songs
	c.prayers = prayers
	c.media = media
	c.feedbacks = feedbacks
	c.hasLiturgy = len(liturgies) > 0
	if c.hasLiturgy {
		c.liturgy = liturgies[0]
	} else {
		c.liturgy = models.DailyLiturgy{}
	}
	c.ready = true
}

// Ready reports whether the bulk load has settled at least once.
func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

func (c *Cache) Members() []models.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Member(nil), c.members...)
}

func (c *Cache) Meetings() []models.Meeting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Meeting(nil), c.meetings...)
}

func (c *Cache) Songs() []models.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Song(nil), c.songs...)
}

func (c *Cache) Prayers() []models.PrayerRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.PrayerRequest(nil), c.prayers...)
}

func (c *Cache) Media() []models.MediaItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.MediaItem(nil), c.media...)
}

func (c *Cache) Feedbacks() []models.Feedback {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Feedback(nil), c.feedbacks...)
}

// Liturgy returns the current day's liturgy, if one has been loaded or
// published this session.
func (c *Cache) Liturgy() (models.DailyLiturgy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.liturgy, c.hasLiturgy
}

// The ById lookups are linear scans; collection sizes stay in the low
// hundreds.

func (c *Cache) MemberByID(id string) (models.Member, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.members {
		if m.Member_ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

func (c *Cache) MeetingByID(id string) (models.Meeting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.meetings {
		if m.Meeting_ID == id {
			return m, true
		}
	}
	return models.Meeting{}, false
}

func (c *Cache) SongByID(id string) (models.Song, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.songs {
		if s.Song_ID == id {
			return s, true
		}
	}
	return models.Song{}, false
}

// SongsFor resolves a meeting's music list. Ids that no longer match a
// song are dropped silently; the playlist renders what it can.
func (c *Cache) SongsFor(meeting models.Meeting) []models.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()

	songs := make([]models.Song, 0, len(meeting.Music_List))
	for _, id := range meeting.Music_List {
		for _, s := range c.songs {
			if s.Song_ID == id {
				songs = append(songs, s)
				break
			}
		}
	}
	return songs
}

// NextMeeting returns the earliest meeting on or after now.
func (c *Cache) NextMeeting(now time.Time) (models.Meeting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var next models.Meeting
	var nextAt time.Time
	found := false
	for _, m := range c.meetings {
		at, err := time.Parse(time.RFC3339, m.Date)
		if err != nil {
			continue
		}
		if at.Before(now) {
			continue
		}
		if !found || at.Before(nextAt) {
			next, nextAt, found = m, at, true
		}
	}
	return next, found
}
