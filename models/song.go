package models

// Song is one entry in the community songbook. Category is free text,
// not a closed set.
type Song struct {
	Song_ID     string `json:"song_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Chords      string `json:"chords"`
	Youtube_URL string `json:"youtube_url"`
	Lyrics      string `json:"lyrics"`
	Tone        string `json:"tone"`
}
