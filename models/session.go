package models

import "time"

// Session is a server-side login session bound to a user.
//
// SessionID is an opaque 256-bit random token issued at login/enrollment.
// Sessions are resolved on every cookie-bearing request and deleted on
// logout or by the expiry sweeper. Expired, revoked, and never-issued
// identifiers are all indistinguishable to callers.
type Session struct {
	// SessionID is the opaque token travelling in the session cookie.
	// Hex-encoded 32 random bytes.
	SessionID string `json:"-"`

	// UserID is the owner the session is bound to.
	UserID int64 `json:"-"`

	// ExpiresAt is the absolute expiry instant. A session whose ExpiresAt
	// is not strictly in the future resolves to nothing.
	ExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
