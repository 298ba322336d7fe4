package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRoleName is assigned to every newly registered user.
const DefaultRoleName = "user"

// seedRoles are ensured to exist in the store at application startup.
var seedRoles = []models.Role{
	{Name: "user", Description: "Default role assigned to every registered account"},
	{Name: "admin", Description: "Full administrative access"},
	{Name: "moderator", Description: "Elevated access for content moderation"},
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository and RoleRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// roleRepository is the data-access layer for role records and
	// user-to-role assignments.
	roleRepository store.RoleRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// dummyHash is a valid bcrypt hash of a throwaway password. When a login
	// names an unknown username, the supplied password is compared against
	// this hash so the rejection takes roughly the same time as a real
	// comparison. Without it, response timing would reveal which usernames
	// exist.
	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("go-auth-keeper-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost; DefaultCost is always valid
		logger.Err(err).Msg("failed to precompute dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// RegisterUser creates a new user account from a registration request.
//
// The plain-text password is hashed with bcrypt before anything touches the
// store; the plaintext is never persisted or logged. Uniqueness of username
// and email is enforced by database constraints, so two concurrent
// registrations for the same identity cannot both succeed — the loser
// receives store.ErrDuplicateIdentity.
//
// After the user row is created, the default "user" role is ensured to exist
// and assigned to the account.
//
// Returns the persisted user (with server-assigned UserID and role names
// populated) or:
//   - ErrInvalidDataProvided if required fields are empty.
//   - A wrapped storage error if persistence fails (e.g. identity already
//     taken — see store.ErrDuplicateIdentity).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" || request.Email == "" {
		log.Error().Str("username", request.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     request.Username,
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: string(passwordHash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	defaultRole, err := a.roleRepository.FindOrCreateRole(ctx, DefaultRoleName, "Default role assigned to every registered account")
	if err != nil {
		log.Err(err).Int64("user_id", registeredUser.UserID).Msg("default role lookup failed")
		return models.User{}, fmt.Errorf("default role lookup failed: %w", err)
	}

	if err := a.roleRepository.AssignRole(ctx, registeredUser.UserID, defaultRole.RoleID); err != nil {
		log.Err(err).Int64("user_id", registeredUser.UserID).Msg("default role assignment failed")
		return models.User{}, fmt.Errorf("default role assignment failed: %w", err)
	}

	registeredUser.Roles = []string{defaultRole.Name}

	return registeredUser, nil
}

// Authenticate verifies a username/password pair against the store.
//
// The method is deliberately built around a single rejection path: an unknown
// username and a wrong password both surface ErrInvalidCredentials, and the
// unknown-username branch still performs a bcrypt comparison (against a
// precomputed dummy hash) so both branches cost about the same.
//
// Returns the matching user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the username is unknown or the password is wrong.
//   - A wrapped storage error if the lookup itself fails (e.g.
//     store.ErrStoreUnavailable).
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn a comparison so the timing matches the wrong-password path
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the username as the "sub" claim, the configured
// tokenIssuer as "iss", and expires after tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the signing algorithm, and the issuer claim. Any validation failure
// (expired, wrong issuer, malformed, bad signature) is normalised to
// ErrInvalidToken so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// ResolveSubject maps a validated token subject back to a live user record.
//
// The store is consulted on every call: token validity alone is not enough,
// because an account may have been removed or deactivated after the token was
// issued. The returned user carries its current role names.
//
// Returns the user record or:
//   - ErrUnknownSubject if no user with that username exists anymore.
//   - A wrapped storage error if the lookup fails.
func (a *authService) ResolveSubject(ctx context.Context, subject string) (models.User, error) {
	log := logger.FromContext(ctx)

	if subject == "" {
		return models.User{}, ErrUnknownSubject
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("subject", subject).Msg("token subject does not match any user")
			return models.User{}, ErrUnknownSubject
		}
		log.Err(err).Str("subject", subject).Msg("subject lookup failed")
		return models.User{}, fmt.Errorf("subject lookup failed: %w", err)
	}

	roles, err := a.roleRepository.GetUserRoles(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("roles lookup failed")
		return models.User{}, fmt.Errorf("roles lookup failed: %w", err)
	}
	foundUser.Roles = roles

	return foundUser, nil
}

// SeedRoles ensures the built-in role set exists in the store. It is called
// once at startup and is idempotent: existing roles keep their descriptions.
func (a *authService) SeedRoles(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, role := range seedRoles {
		if _, err := a.roleRepository.FindOrCreateRole(ctx, role.Name, role.Description); err != nil {
			log.Err(err).Str("role", role.Name).Msg("role seeding failed")
			return fmt.Errorf("role seeding failed for %q: %w", role.Name, err)
		}
	}

	return nil
}
