package adapter

import "errors"

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("invalid username/password")
	ErrNoAccess      = errors.New("no access")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrAccessExpired = errors.New("access token expired")
	ErrServerFailure = errors.New("server failure")
)
