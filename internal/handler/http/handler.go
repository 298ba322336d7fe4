package http

import (
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	// validate checks inbound request bodies against the struct tags
	// declared on the request models.
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}
