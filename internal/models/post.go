package models

import "time"

// News post statuses.
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// NewsPost is a single article on the site.
type NewsPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author,omitempty"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status"` // draft | published
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidPostStatus reports whether s is a known post status.
func ValidPostStatus(s string) bool {
	return s == PostDraft || s == PostPublished
}
