package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateIdentity is returned when an attempt to register a new user
	// fails because the username or email is already taken. Uniqueness is
	// enforced by database constraints, not by a check-then-insert sequence,
	// so concurrent registrations for the same identity cannot race past
	// each other.
	ErrDuplicateIdentity = errors.New("username or email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoRoleWasFound is returned when a role lookup produces an empty
	// result set.
	ErrNoRoleWasFound = errors.New("no role was found")

	// ErrStoreUnavailable is returned when the database cannot be reached
	// (connection-class failures). Handlers surface it as a generic
	// service-unavailable condition.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
