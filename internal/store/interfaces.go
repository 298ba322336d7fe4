package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields. Returns ErrDuplicateIdentity if the username
	// or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RoleRepository is the data-access contract for roles and the
// user↔role association.
type RoleRepository interface {
	// FindOrCreateRole returns the role with the given name, creating it
	// with the supplied description if it does not exist yet. Idempotent.
	FindOrCreateRole(ctx context.Context, name, description string) (models.Role, error)

	// AssignRole links a role to a user. Assigning an already-held role is
	// a no-op.
	AssignRole(ctx context.Context, userID, roleID int64) error

	// GetUserRoles returns the names of all roles held by the user,
	// sorted alphabetically. A user with no roles yields an empty slice.
	GetUserRoles(ctx context.Context, userID int64) ([]string, error)
}
