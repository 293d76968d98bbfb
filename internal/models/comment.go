package models

import "time"

// Moderation states of a contact message.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
	CommentRejected = "rejected"
)

// Comment is a message left through the public contact form.
type Comment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Status    string    `json:"status"` // pending | approved | rejected
	CreatedAt time.Time `json:"createdAt"`
}
