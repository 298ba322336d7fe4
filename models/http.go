package models

// RegisterRequest is the JSON body accepted by POST /register.
// Validation tags are enforced by the handler before the request reaches
// the service layer.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserProfile is the public representation of a user returned by
// POST /register and GET /users/me. It never carries credential data.
//
// The "disabled" field is the inverse of the stored active flag: API
// consumers see whether the account is disabled, not the internal gate.
type UserProfile struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Disabled bool     `json:"disabled"`
	Roles    []string `json:"roles"`
}

// TokenResponse is the JSON body returned by POST /token on successful
// credential verification.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// GreetingResponse is the JSON body returned by GET /protected.
type GreetingResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform rejection body for every failed request.
// The message is always generic; internal detail never leaks to callers.
type ErrorResponse struct {
	Error string `json:"error"`
}
