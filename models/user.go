package models

import "time"

// User represents an account entity used for authentication and document
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries; use [User.Projection] when a user leaves the service layer.
type User struct {
	// ID is the unique identifier generated by the store (UUID).
	ID string `json:"id"`

	// Email is the unique, case-preserving login identifier.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// Image is an optional avatar URL.
	Image string `json:"image,omitempty"`

	// Password holds the bcrypt digest of the user's password.
	// It is empty for accounts created without credentials and is never
	// serialized.
	Password string `json:"-"`

	// EmailVerified is the moment the email address was verified, if ever.
	EmailVerified *time.Time `json:"email_verified,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can sign in with a password.
func (u User) HasPassword() bool {
	return u.Password != ""
}

// Projection returns the public view of the user.
func (u User) Projection() SessionUser {
	return SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Image: u.Image,
	}
}

// SessionUser is the projection of a [User] resolved from a valid session.
// Password and internal timestamps never leave the auth boundary.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}
