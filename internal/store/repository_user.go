package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, IsActive, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. Uniqueness of username and
// email is enforced by the table constraints; no pre-check is performed, so
// two concurrent registrations for the same identity cannot both succeed.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateIdentity].
//   - Connection-class failure → [ErrStoreUnavailable].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.FullName, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Email, &created.FullName, &created.PasswordHash, &created.IsActive, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("duplicate identity")
			return models.User{}, ErrDuplicateIdentity
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
			return models.User{}, r.db.wrapDriverError(err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Connection-class failure → [ErrStoreUnavailable].
//   - Any other failure → wrapped low-level error.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByEmail retrieves the user record whose email matches exactly.
// Error semantics are identical to [userRepository.FindUserByUsername].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

func (r *userRepository) findUser(ctx context.Context, query, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.FullName, &foundUser.PasswordHash, &foundUser.IsActive, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		if code := postgresError(err); code != "" {
			log.Err(err).Str("func", "*userRepository.findUser").Msg("unexpected DB error")
			return models.User{}, r.db.wrapDriverError(err)
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
