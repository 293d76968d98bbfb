package models

import "time"

// Music is a YouTube link shown in the site's playlist widget.
type Music struct {
	ID         int       `json:"id"`
	YoutubeURL string    `json:"youtubeUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
