package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveSubject(ctx context.Context, subject string) (models.User, error)
	SeedRoles(ctx context.Context) error
}
