package models

import "time"

// User represents an account record used for authentication and profile data.
// It is owned exclusively by the user store; services and handlers receive
// copies and must never expose credential material.
type User struct {
	// ID is the unique, immutable identifier assigned by the store.
	ID int64 `json:"id"`

	// Name is the display name of the user. Mutable via update.
	Name string `json:"name"`

	// Email is the unique login identifier. Mutable via update; uniqueness
	// is enforced by the store through a UNIQUE constraint.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext passwords never reach this struct. Excluded from JSON so it
	// can never leak through a response envelope.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp the account was registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the externally visible projection of a User: identity
// fields only, never credentials.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public returns the response-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// UserUpdate carries a partial update for a user record. Only non-nil
// fields are applied; the password is not updatable through this path.
type UserUpdate struct {
	// Name, when non-nil, replaces the user's display name.
	Name *string `json:"name,omitempty"`

	// Email, when non-nil, replaces the user's email. Subject to the same
	// uniqueness constraint as registration.
	Email *string `json:"email,omitempty"`
}
