package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// usersMe handles GET /users/me.
//
// The auth middleware has already resolved the token subject to a live user
// record, so the handler only reshapes it into the public profile form.
func (h *Handler) usersMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.usersMe").Msg("no authenticated user in request context")
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

// protected handles GET /protected, a minimal role-agnostic endpoint that
// demonstrates the authenticated path end to end.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.protected").Msg("no authenticated user in request context")
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	utils.WriteJSON(w, models.GreetingResponse{
		Message: fmt.Sprintf("Hello %s, this is a protected route!", user.FullName),
	}, http.StatusOK)
}
