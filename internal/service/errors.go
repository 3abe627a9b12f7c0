package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidSinceID = errors.New("since_id must not be negative")
)

// print station
var (
	ErrNoCredentials = errors.New("print station credentials are not configured")
	ErrLoginFailed   = errors.New("print station login failed")
	ErrRenderFailed  = errors.New("message rendering failed")
)
