package models

// DailyLiturgy holds the readings for one day. The application keeps a
// single current instance at a time; a new day's liturgy replaces the
// previous one wholesale, fields are never merged.
type DailyLiturgy struct {
	Liturgy_ID string `json:"liturgy_id"`
	Date       string `json:"date"`
	Gospel     string `json:"gospel"`
	Reading1   string `json:"reading1"`
	Reading2   string `json:"reading2"`
	Psalm      string `json:"psalm"`
	Reflection string `json:"reflection"`
	Video_URL  string `json:"video_url"`
}
