package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, full_name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, full_name, password_hash, is_active, created_at;`

	findUserByUsername = `SELECT user_id, username, email, full_name, password_hash, is_active, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, full_name, password_hash, is_active, created_at
    FROM users
    WHERE email = $1;`

	// The no-op DO UPDATE keeps RETURNING populated on conflict, so the
	// existing role row comes back in one round trip.
	findOrCreateRole = `INSERT INTO roles (name, description)
    VALUES ($1, $2)
    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
    RETURNING role_id, name, description;`

	assignRole = `INSERT INTO user_roles (user_id, role_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUserRolesQuery builds the join over user_roles that resolves all role
// names held by a user.
func buildUserRolesQuery(userID int64) (string, []any, error) {
	return psql.Select("r.name").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.role_id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		ToSql()
}
