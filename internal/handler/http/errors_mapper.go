package http

import (
	"errors"
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusGone,
	service.ErrTokenIsInvalid:      http.StatusForbidden,
	service.ErrNotPermitted:        http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrProjectNotFound:   http.StatusNotFound,
	store.ErrTaskNotFound:      http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
