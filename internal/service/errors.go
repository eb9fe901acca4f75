package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrNotPermitted is returned when a user who is neither the admin nor
	// an invitee touches a project, or a non-admin attempts an admin-only
	// operation.
	ErrNotPermitted = errors.New("operation not permitted for this user")
)
