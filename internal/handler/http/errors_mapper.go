package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrUnknownSubject:      http.StatusUnauthorized,
	service.ErrInactiveAccount:     http.StatusBadRequest,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrDuplicateIdentity: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusUnauthorized,
	store.ErrStoreUnavailable:  http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap pairs each well-known error with the generic message the
// client is allowed to see. Anything not listed falls back to a plain
// internal-server-error body; wrapped detail stays in the logs.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrInvalidCredentials:  app.MsgIncorrectUsernamePassword,
	service.ErrInvalidToken:        app.MsgCouldNotValidateCredentials,
	service.ErrUnknownSubject:      app.MsgCouldNotValidateCredentials,
	service.ErrInactiveAccount:     app.MsgInactiveUser,

	store.ErrDuplicateIdentity: app.MsgIdentityAlreadyRegistered,
	store.ErrNoUserWasFound:    app.MsgCouldNotValidateCredentials,
	store.ErrStoreUnavailable:  app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError is the single rejection path for every handler and middleware.
// It resolves the HTTP status and the generic client-facing message from the
// error chain, logs the full error server-side, and writes a uniform JSON
// body. Handlers never write failure responses any other way, so every
// rejection of the same class is byte-identical on the wire.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	log.Err(err).Int("status", status).Msg(message)

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
