package models

import (
	"database/sql"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// Email is optional; when present it must be unique across all users.
	Email string `json:"email,omitempty"`

	// IsActive suspends authentication when false without deleting the
	// account. The auth middleware re-checks this flag on every request.
	IsActive bool `json:"isActive"`

	// Role determines which role gates the user passes.
	Role Role `json:"role"`

	// LastLogin is bumped as a side effect of successful authentication.
	LastLogin sql.NullTime `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user safe for serialization to clients:
// the password hash is cleared. The JSON tag on PasswordHash already hides
// it from encoding/json; Sanitized additionally guards code paths that log
// or copy the struct.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// UserFilter holds the optional criteria of an administrative user list
// query. The zero value lists everyone.
type UserFilter struct {
	Role   Role
	Active *bool
	Limit  uint64
	Offset uint64
}

// Profile holds per-user presentation preferences. One row is created for
// every account inside the signup transaction.
type Profile struct {
	UserID   int64  `json:"userId"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

func (p Profile) TableName() string {
	return "profiles"
}

// ClientProfile is the dependent record created at signup for CLIENT
// accounts only, inside the same transaction as the user row.
type ClientProfile struct {
	UserID        int64  `json:"userId"`
	AccountStatus string `json:"accountStatus"`
}

func (c ClientProfile) TableName() string {
	return "client_profiles"
}
