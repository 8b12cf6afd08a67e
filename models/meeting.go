package models

// Meeting is a scheduled gathering hosted at a member couple's home.
// Date is an RFC 3339 instant; Time is the informal display time.
// Music_List holds song ids; entries that no longer resolve to a song
// are dropped when the playlist is rendered, never rewritten here.
type Meeting struct {
	Meeting_ID     string   `json:"meeting_id"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Host_Couple_ID string   `json:"host_couple_id"`
	Address        string   `json:"address"`
	Music_List     []string `json:"music_list"`
	Notes          string   `json:"notes"`
	Geo_Lat        float64  `json:"geo_lat,omitempty"`
	Geo_Lng        float64  `json:"geo_lng,omitempty"`
}
