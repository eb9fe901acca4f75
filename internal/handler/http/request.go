package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/models"
)

// decodeRequest unmarshals the request body into dst. On malformed JSON it
// writes a 400 envelope and returns false; the caller must return immediately.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, r, http.StatusBadRequest, "invalid JSON was passed")
		return false
	}
	return true
}

// authenticate decodes the body into req and validates the access token it
// carries. On success it returns the authenticated username and the token
// string to echo back in the response envelope; the echoed token is a fresh
// replacement when the presented one was close to expiry.
//
// Failure responses are written here: 400 for malformed JSON or a missing
// token, 410 Gone for an expired token, 403 for anything else the token
// check rejects. The boolean result tells the caller whether to proceed.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, req models.AuthedRequest) (username string, echoToken string, ok bool) {
	log := logger.FromRequest(r)

	if !h.decodeRequest(w, r, req) {
		return "", "", false
	}

	tokenString := req.Token()
	if tokenString == "" {
		log.Warn().Msg("request is missing access token")
		h.respondError(w, r, http.StatusBadRequest, "missing access token")
		return "", "", false
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("access token is expired")
			h.respondError(w, r, http.StatusGone, "access token is expired")
		default:
			log.Err(err).Msg("access token is invalid")
			h.respondError(w, r, http.StatusForbidden, "access token is invalid")
		}
		return "", "", false
	}

	return token.Username, token.SignedString, true
}
