package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Used during authentication and embedded as the token subject.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into responses.
	PasswordHash string `json:"-"`

	// IsActive gates all authorization for this account independent of
	// token validity. Deactivated users are rejected on every request.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// Roles holds the names of all roles assigned to the user.
	// Populated by the store when the full profile is resolved.
	Roles []string `json:"roles"`
}

// Profile converts the user into its public API representation:
// credentials are stripped and the active flag is inverted into the
// wire-level "disabled" field.
func (u User) Profile() UserProfile {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	return UserProfile{
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Disabled: !u.IsActive,
		Roles:    roles,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
