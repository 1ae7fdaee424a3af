// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the marketplace.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user. Assigned at creation,
	// never changed afterwards.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used for authentication.
	// Stored lowercased and trimmed; unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store plaintext passwords and is never serialized.
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`

	// FullName is the user's display name. Required, non-empty after trimming.
	FullName string `gorm:"size:255;not null" json:"fullName"`

	// Role is one of guest, host or admin. Defaults to guest at creation.
	Role Role `gorm:"size:16;not null;default:guest;index" json:"role"`

	// Phone is an optional contact number.
	Phone string `gorm:"size:32" json:"phone,omitempty"`

	// AvatarURL is an optional profile image location.
	AvatarURL string `gorm:"size:512" json:"avatarUrl,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
