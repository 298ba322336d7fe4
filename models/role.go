package models

// Role is a named permission label referenced by users through the
// user_roles association table. Roles are created once at initialization
// and are never owned by individual users.
type Role struct {
	// RoleID is the internal unique identifier of the role.
	RoleID int64 `json:"-"`

	// Name is the unique role name (e.g. "user", "admin", "moderator").
	Name string `json:"name"`

	// Description is a human-readable explanation of the role's purpose.
	Description string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}
