package models

// Member is one couple in the community directory. Geo coordinates of
// (0,0) mean the address has not been geocoded yet.
type Member struct {
	Member_ID    string  `json:"member_id"`
	Husband_Name string  `json:"husband_name"`
	Wife_Name    string  `json:"wife_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	CEP          string  `json:"cep"`
	Address      string  `json:"address"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Birthday     string  `json:"birthday"`
	Geo_Lat      float64 `json:"geo_lat"`
	Geo_Lng      float64 `json:"geo_lng"`
	Notes        string  `json:"notes"`
}

// Geocoded reports whether the member carries real coordinates.
func (m Member) Geocoded() bool {
	return m.Geo_Lat != 0 || m.Geo_Lng != 0
}
