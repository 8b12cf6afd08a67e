package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Burgamansi/CarmoPlusUltra/cache"
	"github.com/Burgamansi/CarmoPlusUltra/models"
	"github.com/Burgamansi/CarmoPlusUltra/repositories"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

var (
	// ErrMissingField is returned when an intent's required field is
	// absent. Format and semantic checks stay with the calling UI.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a value falls outside its
	// accepted set or range.
	ErrInvalidField = errors.New("invalid field value")
)

// App is the set of mutation intents the rest of the application may
// invoke. Every intent applies its local change to the cache first and
// only then issues the remote write; a failed write is reported to the
// caller but the optimistic state is kept, so the local view can run
// ahead of the store until the next full reload.
type App struct {
	store store.Store
	cache *cache.Cache
}

func NewApp(s store.Store, c *cache.Cache) *App {
	return &App{store: s, cache: c}
}

// Cache exposes the read side to the HTTP layer.
func (a *App) Cache() *cache.Cache {
	return a.cache
}

// Initialize runs the bulk load. Safe to call again for a full
// refresh; collections are replaced, never appended to.
func (a *App) Initialize(ctx context.Context) {
	a.cache.Initialize(ctx, a.store)
}

func (a *App) AddMember(ctx context.Context, m models.Member) (models.Member, error) {
	if m.Husband_Name == "" && m.Wife_Name == "" {
		return models.Member{}, fmt.Errorf("%w: husband_name or wife_name", ErrMissingField)
	}

	m.Member_ID = repositories.Members.AllocateID(a.store)
	a.cache.AddMember(m)
	if err := repositories.Members.Create(ctx, a.store, m.Member_ID, m); err != nil {
		return m, err
	}
	return m, nil
}

func (a *App) AddMeeting(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	if m.Date == "" {
		return models.Meeting{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	if m.Host_Couple_ID == "" {
		return models.Meeting{}, fmt.Errorf("%w: host_couple_id", ErrMissingField)
	}

	m.Meeting_ID = repositories.Meetings.AllocateID(a.store)
	a.cache.AddMeeting(m)
	if err := repositories.Meetings.Create(ctx, a.store, m.Meeting_ID, m); err != nil {
		return m, err
	}
	return m, nil
}

func (a *App) UpdateMeeting(ctx context.Context, m models.Meeting) (models.Meeting, error) {
	if m.Meeting_ID == "" {
		return models.Meeting{}, fmt.Errorf("%w: meeting_id", ErrMissingField)
	}

	if !a.cache.ReplaceMeeting(m) {
		log.Printf("services: update for unknown meeting %s, local state untouched", m.Meeting_ID)
	}
	if err := repositories.Meetings.Replace(ctx, a.store, m.Meeting_ID, m); err != nil {
		return m, err
	}
	return m, nil
}

func (a *App) AddSong(ctx context.Context, s models.Song) (models.Song, error) {
	if s.Title == "" {
		return models.Song{}, fmt.Errorf("%w: title", ErrMissingField)
	}

	s.Song_ID = repositories.Songs.AllocateID(a.store)
	a.cache.AddSong(s)
	if err := repositories.Songs.Create(ctx, a.store, s.Song_ID, s); err != nil {
		return s, err
	}
	return s, nil
}

func (a *App) AddPrayer(ctx context.Context, p models.PrayerRequest) (models.PrayerRequest, error) {
	if p.Name == "" {
		return models.PrayerRequest{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if p.Request_Text == "" {
		return models.PrayerRequest{}, fmt.Errorf("%w: request_text", ErrMissingField)
	}
	if !models.ValidPrayerCategory(p.Category) {
		return models.PrayerRequest{}, fmt.Errorf("%w: category %q", ErrInvalidField, p.Category)
	}

	// The counter always starts at zero, whatever the caller sent.
	p.Likes = 0
	if p.Date == "" {
		p.Date = time.Now().UTC().Format(time.RFC3339)
	}

	p.Prayer_ID = repositories.Prayers.AllocateID(a.store)
	a.cache.AddPrayer(p)
	if err := repositories.Prayers.Create(ctx, a.store, p.Prayer_ID, p); err != nil {
		return p, err
	}
	return p, nil
}

// LikePrayer bumps the like counter by one and pushes the new count as
// a whole-field overwrite; the store offers no atomic increment. A
// like for an unknown prayer is a silent no-op. Each tap is its own
// intent — nothing is debounced or coalesced.
func (a *App) LikePrayer(ctx context.Context, id string) (int, error) {
	likes, ok := a.cache.BumpPrayerLikes(id)
	if !ok {
		return 0, nil
	}
	if err := repositories.Prayers.UpdateFields(ctx, a.store, id, map[string]interface{}{"likes": likes}); err != nil {
		return likes, err
	}
	return likes, nil
}

func (a *App) AddMedia(ctx context.Context, m models.MediaItem) (models.MediaItem, error) {
	if m.Type != models.MediaTypeImage && m.Type != models.MediaTypeVideo {
		return models.MediaItem{}, fmt.Errorf("%w: type %q", ErrInvalidField, m.Type)
	}
	if m.URL == "" {
		return models.MediaItem{}, fmt.Errorf("%w: url", ErrMissingField)
	}
	if m.Date == "" {
		m.Date = time.Now().UTC().Format(time.RFC3339)
	}

	m.Media_ID = repositories.Media.AllocateID(a.store)
	a.cache.AddMedia(m)
	if err := repositories.Media.Create(ctx, a.store, m.Media_ID, m); err != nil {
		return m, err
	}
	return m, nil
}

func (a *App) AddFeedback(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	if f.Rating < 1 || f.Rating > 5 {
		return models.Feedback{}, fmt.Errorf("%w: rating %d not in 1..5", ErrInvalidField, f.Rating)
	}
	if f.Date == "" {
		f.Date = time.Now().UTC().Format(time.RFC3339)
	}

	f.Feedback_ID = repositories.Feedbacks.AllocateID(a.store)
	a.cache.AddFeedback(f)
	if err := repositories.Feedbacks.Create(ctx, a.store, f.Feedback_ID, f); err != nil {
		return f, err
	}

	if svc := GetEmailService(); svc != nil {
		meeting, _ := a.cache.MeetingByID(f.Meeting_ID)
		go func() {
			if err := svc.SendFeedbackNotification(f, meeting); err != nil {
				log.Printf("services: feedback notification email failed: %v", err)
			}
		}()
	}
	return f, nil
}

// UpdateLiturgy publishes a new daily liturgy. The current slot is
// swapped for the new value; the store keeps the history as separate
// documents, newest-first, and only the newest is ever loaded.
func (a *App) UpdateLiturgy(ctx context.Context, l models.DailyLiturgy) (models.DailyLiturgy, error) {
	if l.Date == "" {
		return models.DailyLiturgy{}, fmt.Errorf("%w: date", ErrMissingField)
	}

	l.Liturgy_ID = repositories.Liturgies.AllocateID(a.store)
	a.cache.SetLiturgy(l)
	if err := repositories.Liturgies.Create(ctx, a.store, l.Liturgy_ID, l); err != nil {
		return l, err
	}
	return l, nil
}
