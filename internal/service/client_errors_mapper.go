package service

import (
	"errors"

	"github.com/jasonyi-dev/ganttrack/internal/adapter"
)

// apiErrors are the sentinel values the adapter maps HTTP statuses onto. An
// error carrying one of them means the server answered; anything else is a
// transport failure (connection refused, timeout, DNS) and the client may
// fall back to its offline cache.
var apiErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrNoAccess,
	adapter.ErrNotFound,
	adapter.ErrAlreadyExists,
	adapter.ErrAccessExpired,
	adapter.ErrServerFailure,
}

func isTransportError(err error) bool {
	if err == nil {
		return false
	}
	for _, sentinel := range apiErrors {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}
