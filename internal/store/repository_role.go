package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// It manages the "roles" table and the "user_roles" association table.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindOrCreateRole returns the role with the given name, inserting it with
// the supplied description when it does not exist yet.
//
// The upsert uses ON CONFLICT with a no-op update so the RETURNING clause
// always yields the canonical row, whether it was just created or already
// present. An existing role's description is never overwritten.
func (r *roleRepository) FindOrCreateRole(ctx context.Context, name, description string) (models.Role, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findOrCreateRole, name, description)

	var role models.Role
	if err := row.Scan(&role.RoleID, &role.Name, &role.Description); err != nil {
		if code := postgresError(err); code != "" {
			log.Err(err).Str("func", "*roleRepository.FindOrCreateRole").Str("role", name).Msg("unexpected DB error")
			return models.Role{}, r.db.wrapDriverError(err)
		}
		log.Err(err).Str("func", "*roleRepository.FindOrCreateRole").Msg("error: scanning error")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}

// AssignRole links the role to the user in the user_roles association table.
// Re-assigning an already-held role is a no-op (ON CONFLICT DO NOTHING).
func (r *roleRepository) AssignRole(ctx context.Context, userID, roleID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, assignRole, userID, roleID); err != nil {
		log.Err(err).
			Str("func", "*roleRepository.AssignRole").
			Int64("user_id", userID).
			Int64("role_id", roleID).
			Msg("failed to assign role")
		return r.db.wrapDriverError(err)
	}

	return nil
}

// GetUserRoles returns the names of all roles held by the user, sorted
// alphabetically. A user without roles yields an empty slice, not an error.
func (r *roleRepository) GetUserRoles(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserRolesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.GetUserRoles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*roleRepository.GetUserRoles").
			Int64("user_id", userID).
			Msg("failed to execute query for user roles")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	roles := make([]string, 0, 4)
	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			log.Err(scanErr).Str("func", "*roleRepository.GetUserRoles").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		roles = append(roles, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}
