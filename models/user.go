package models

import "time"

// User represents an owner account used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier, typically an email address.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized outward.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the serialized credential ("salt_hex:hash_hex").
	// This value MUST be a KDF output, never plaintext. Excluded from JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user stripped of credential material,
// safe to serialize in HTTP responses.
func (u User) Public() User {
	return User{
		Login:     u.Login,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
