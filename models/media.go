package models

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem is one gallery entry. URL is either a remote link (videos)
// or a data URI holding the pixel data directly, since no object
// storage tier exists. Meeting_ID optionally links the item to the
// meeting it was taken at.
type MediaItem struct {
	Media_ID    string `json:"media_id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Meeting_ID  string `json:"meeting_id,omitempty"`
	Date        string `json:"date"`
	Caption     string `json:"caption,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
