package models

// Feedback is a member's review of a meeting. Rating is 1 to 5.
// Meeting_ID may be empty when the feedback is about the group in
// general rather than one meeting.
type Feedback struct {
	Feedback_ID  string `json:"feedback_id"`
	Meeting_ID   string `json:"meeting_id"`
	Rating       int    `json:"rating"`
	Positives    string `json:"positives"`
	Improvements string `json:"improvements"`
	Suggestions  string `json:"suggestions"`
	Date         string `json:"date"`
}
