package models

import "time"

// Roles assignable to a user account.
const (
	RoleAdmin       = "Admin"
	RoleEditor      = "Editor"
	RoleWriter      = "Writer"
	RoleContributor = "Contributor"
)

// Account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// DefaultAvatar is used when registration does not supply an avatar URL.
const DefaultAvatar = "https://placehold.co/40x40/CCCCCC/000000?text=U"

// MaxUsernameLen bounds the username column.
const MaxUsernameLen = 100

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidRole reports whether r is one of the four assignable roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleWriter, RoleContributor:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known account status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
