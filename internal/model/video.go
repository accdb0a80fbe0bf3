package model

import "fmt"

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// VideoRecord is the single best match returned by a search
type VideoRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewVideoRecord builds a record whose URL is always derived from the id
func NewVideoRecord(id, title string) *VideoRecord {
	return &VideoRecord{
		ID:    id,
		Title: title,
		URL:   WatchURL(id),
	}
}

// WatchURL returns the canonical watch URL for a video id
func WatchURL(id string) string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, id)
}
