package store

import (
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages bundles all repositories backed by the shared database connection.
type Storages struct {
	UserRepository UserRepository
	RoleRepository RoleRepository
}

// NewStorages wires every repository to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		RoleRepository: NewRoleRepository(db, logger),
	}
}
