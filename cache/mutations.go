package cache

import "github.com/Burgamansi/CarmoPlusUltra/models"

// Optimistic mutation steps, invoked by the services layer before the
// corresponding remote write is issued. Each one is a single step
// under the lock. Entities are value snapshots: a change is always
// "replace the element", never an in-place field edit.
//
// Collections fetched newest-first (prayers, media) are prepended so
// the optimistic copy lands where the next reload would put it; the
// rest are appended.

func (c *Cache) AddMember(m models.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = append(c.members, m)
}

func (c *Cache) AddMeeting(m models.Meeting) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meetings = append(c.meetings, m)
}

func (c *Cache) AddSong(s models.Song) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.songs = append(c.songs, s)
}

func (c *Cache) AddPrayer(p models.PrayerRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prayers = append([]models.PrayerRequest{p}, c.prayers...)
}

func (c *Cache) AddMedia(m models.MediaItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.media = append([]models.MediaItem{m}, c.media...)
}

func (c *Cache) AddFeedback(f models.Feedback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feedbacks = append(c.feedbacks, f)
}

// ReplaceMeeting swaps the meeting with the same id for the new value.
// A miss is a no-op and reports false; it should not happen when the
// intents are invoked correctly.
func (c *Cache) ReplaceMeeting(m models.Meeting) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.meetings {
		if c.meetings[i].Meeting_ID == m.Meeting_ID {
			c.meetings[i] = m
			return true
		}
	}
	return false
}

// BumpPrayerLikes increments the like counter and returns the new
// count. The read-modify-write happens under the lock, so N concurrent
// bumps always net exactly +N.
func (c *Cache) BumpPrayerLikes(id string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.prayers {
		if c.prayers[i].Prayer_ID == id {
			c.prayers[i].Likes++
			return c.prayers[i].Likes, true
		}
	}
	return 0, false
}

// SetLiturgy replaces the current-liturgy slot wholesale. There is no
// merging of partial fields.
func (c *Cache) SetLiturgy(l models.DailyLiturgy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.liturgy = l
	c.hasLiturgy = true
}
