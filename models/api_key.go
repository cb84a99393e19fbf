package models

import "time"

// APIKey is a long-lived bearer credential for programmatic access.
//
// The raw secret is never stored: only its SHA-256 digest and a short
// non-secret hint survive minting. The raw value is shown to the owner
// exactly once, at create time and at reset time.
type APIKey struct {
	// KeyID is the internal unique identifier of the key.
	KeyID int64 `json:"id"`

	// UserID is the owner of the key. Excluded from JSON.
	UserID int64 `json:"-"`

	// Name is a user-chosen label ("home assistant", "cron", ...).
	Name string `json:"name"`

	// KeyHash is the hex-encoded SHA-256 digest of the raw secret.
	// Never serialized outward.
	KeyHash string `json:"-"`

	// KeyHint is the last 4 characters of the raw secret, shown in listings
	// so the owner can tell keys apart.
	KeyHint string `json:"-"`

	// LastUsedAt records the most recent successful authentication with this
	// key. Nil until first use; reset to nil when the key is rotated.
	LastUsedAt *time.Time `json:"last_used_at"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}
