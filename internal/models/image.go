package models

import "time"

// UploadedImage describes a file blob stored by the upload pipeline.
type UploadedImage struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Size       string    `json:"size"` // e.g. "500KB"
	UploadedAt time.Time `json:"uploaded_at"`
}

// Image is the persisted record of an uploaded file, optionally tied to a post.
type Image struct {
	ID         int       `json:"id"`
	PostID     int       `json:"postId,omitempty"`
	PostTitle  string    `json:"postTitle,omitempty"`
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Size       string    `json:"size,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
