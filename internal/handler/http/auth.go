package http

import (
	"errors"
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if !h.decodeRequest(w, r, &creds) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credentials provided")
			h.respondError(w, r, http.StatusBadRequest, "invalid credentials provided")
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username already taken")
			h.respondError(w, r, http.StatusConflict, "username already taken")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	h.respond(w, r, http.StatusOK, models.RegisterResponse{
		Envelope: models.Envelope{Status: http.StatusOK, Message: "user registered"},
		Username: registeredUser.Username,
	})
}

func (h *Handler) authorise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if !h.decodeRequest(w, r, &creds) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credentials provided")
			h.respondError(w, r, http.StatusBadRequest, "invalid credentials provided")
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			h.respondError(w, r, http.StatusNotFound, "this user does not exist")
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			h.respondError(w, r, http.StatusUnauthorized, "invalid username/password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.respondError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	h.respond(w, r, http.StatusOK, okEnvelope("user authorised", token.SignedString))
}
