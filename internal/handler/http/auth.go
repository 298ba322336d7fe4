package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// tokenType is the value of the "token_type" field in every token response.
const tokenType = "bearer"

// register handles POST /register.
//
// It decodes the JSON registration request, validates it against the struct
// tags on [models.RegisterRequest], and delegates account creation to the
// auth service. On success the new account's public profile is returned with
// HTTP 201 Created.
//
// A duplicate username or email surfaces as HTTP 400 with a generic message
// that does not say which field collided.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err := h.validate.Struct(request); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("registration request failed validation")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser.Profile(), http.StatusCreated)
}

// token handles POST /token.
//
// Credentials arrive form-encoded ("username" and "password" fields). On a
// successful match a signed JWT is issued with the username as its subject
// and returned as {"access_token": ..., "token_type": "bearer"}.
//
// An unknown username and a wrong password both produce the same HTTP 401
// response; the handler never reveals which one it was.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.token").Msg("invalid form body")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	authenticatedUser, err := h.services.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", authenticatedUser.UserID).Msg("user successfully authenticated")

	token, err := h.services.AuthService.CreateToken(ctx, authenticatedUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   tokenType,
	}, http.StatusOK)
}
