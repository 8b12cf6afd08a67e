package models

// Login is the coordinator login request body.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Note is the scratchpad payload saved locally per device key; it is
// not part of the synced domain data.
type Note struct {
	Key  string `json:"key"`
	Body string `json:"body"`
}
