package models

import "time"

// Session is a server-side login session. The opaque token handed to the
// browser is never stored; TokenHash holds its SHA-256 digest.
type Session struct {
	// TokenHash is the hex-encoded SHA-256 digest of the session token.
	TokenHash string `json:"-"`

	// UserID references the owning [User]. A user may own many sessions.
	UserID string `json:"user_id"`

	// ExpiresAt is the instant after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session is no longer valid at now.
// A session is valid only while now is strictly before ExpiresAt.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
