package models

// PrayerRequest is a prayer intention on the community board.
// Likes starts at 0 and only ever grows.
type PrayerRequest struct {
	Prayer_ID    string `json:"prayer_id"`
	Name         string `json:"name"`
	Request_Text string `json:"request_text"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	Likes        int    `json:"likes"`
}

// PrayerCategories is the closed set of accepted prayer categories.
var PrayerCategories = []string{
	"Health",
	"Family",
	"Youth",
	"Gratitude",
	"Deliverance",
	"Other",
}

// ValidPrayerCategory reports whether category belongs to the closed set.
func ValidPrayerCategory(category string) bool {
	for _, c := range PrayerCategories {
		if c == category {
			return true
		}
	}
	return false
}
