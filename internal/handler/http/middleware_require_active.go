package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// requireActive gates every authenticated route on the account's active flag.
//
// It must run after the auth middleware, which stores the freshly resolved
// user in the request context. A deactivated account is rejected with HTTP
// 400 even when its token is still valid: deactivation takes effect on the
// next request, without waiting for outstanding tokens to expire.
func (h *Handler) requireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			log.Error().Str("func", "*Handler.requireActive").Msg("no authenticated user in request context")
			writeError(w, r, service.ErrInvalidToken)
			return
		}

		if !user.IsActive {
			log.Error().Str("username", user.Username).Msg("inactive account rejected")
			writeError(w, r, service.ErrInactiveAccount)
			return
		}

		next.ServeHTTP(w, r)
	})
}
