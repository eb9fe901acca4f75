package http

import (
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/utils"
	"github.com/jasonyi-dev/ganttrack/models"
)

// respond serialises payload as JSON with the given HTTP status code.
// Payload types embed [models.Envelope], whose numeric status field must
// match statusCode so clients can branch on the decoded body alone.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	if _, err := utils.WriteJSON(w, payload, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write JSON response")
	}
}

// respondError writes a bare envelope carrying only status and message.
// Used for every failure path, including failures before authentication
// where no token echo is available.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	h.respond(w, r, statusCode, models.Envelope{
		Status:  statusCode,
		Message: message,
	})
}

// okEnvelope builds the envelope for a successful authenticated response,
// echoing the possibly renewed access token back to the caller.
func okEnvelope(message, accessToken string) models.Envelope {
	return models.Envelope{
		Status:      http.StatusOK,
		Message:     message,
		AccessToken: accessToken,
	}
}
