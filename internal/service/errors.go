package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// rejections so callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken normalises every token validation failure: bad
	// signature, wrong issuer, expired, malformed.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrUnknownSubject is returned when a valid token names a user that no
	// longer exists in the store.
	ErrUnknownSubject = errors.New("token subject is unknown")

	// ErrInactiveAccount is returned when a deactivated user presents an
	// otherwise valid token.
	ErrInactiveAccount = errors.New("account is inactive")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
