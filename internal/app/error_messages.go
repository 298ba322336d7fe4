// Package app contains shared application-layer constants used across the
// go-auth-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API —
// and keeps rejection messages deliberately generic: the body never reveals
// whether a username exists, which field was duplicated, or why exactly a
// token failed validation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIncorrectUsernamePassword is returned when the supplied
	// username/password combination is rejected. The same message covers
	// unknown usernames and wrong passwords so the two cases cannot be
	// told apart.
	MsgIncorrectUsernamePassword = "incorrect username or password"

	// MsgIdentityAlreadyRegistered is returned when a registration attempt
	// is rejected because the username or email is already in use. The
	// message deliberately does not say which of the two collided.
	MsgIdentityAlreadyRegistered = "username or email already registered"

	// MsgCouldNotValidateCredentials is returned when a bearer token is
	// missing, malformed, expired, carries a bad signature, or names a user
	// that no longer exists.
	MsgCouldNotValidateCredentials = "could not validate credentials"

	// MsgInactiveUser is returned when a deactivated account presents an
	// otherwise valid token.
	MsgInactiveUser = "inactive user"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the credential store cannot be
	// reached and the request cannot be served.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"
)
