package repositories

import (
	"github.com/Burgamansi/CarmoPlusUltra/models"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// Members has no server-side order; the directory is small and the UI
// sorts it by name locally.
var Members = Collection[models.Member]{
	Name:  "members",
	IDKey: "member_id",
	WithID: func(m models.Member, id string) models.Member {
		m.Member_ID = id
		return m
	},
}

var Meetings = Collection[models.Meeting]{
	Name:  "meetings",
	Order: store.Order{Field: "date", Direction: store.Asc},
	IDKey: "meeting_id",
	WithID: func(m models.Meeting, id string) models.Meeting {
		m.Meeting_ID = id
		return m
	},
}

var Songs = Collection[models.Song]{
	Name:  "songs",
	Order: store.Order{Field: "title", Direction: store.Asc},
	IDKey: "song_id",
	WithID: func(s models.Song, id string) models.Song {
		s.Song_ID = id
		return s
	},
}

var Prayers = Collection[models.PrayerRequest]{
	Name:  "prayers",
	Order: store.Order{Field: "date", Direction: store.Desc},
	IDKey: "prayer_id",
	WithID: func(p models.PrayerRequest, id string) models.PrayerRequest {
		p.Prayer_ID = id
		return p
	},
}

// Liturgies is fetched newest-first; the cache keeps only the first
// document as the current day's liturgy.
var Liturgies = Collection[models.DailyLiturgy]{
	Name:  "liturgy",
	Order: store.Order{Field: "date", Direction: store.Desc},
	IDKey: "liturgy_id",
	WithID: func(l models.DailyLiturgy, id string) models.DailyLiturgy {
		l.Liturgy_ID = id
		return l
	},
}

var Media = Collection[models.MediaItem]{
	Name:  "media",
	Order: store.Order{Field: "date", Direction: store.Desc},
	IDKey: "media_id",
	WithID: func(m models.MediaItem, id string) models.MediaItem {
		m.Media_ID = id
		return m
	},
}

var Feedbacks = Collection[models.Feedback]{
	Name:  "feedbacks",
	Order: store.Order{Field: "date", Direction: store.Desc},
	IDKey: "feedback_id",
	WithID: func(f models.Feedback, id string) models.Feedback {
		f.Feedback_ID = id
		return f
	},
}
