package http

import (
	"net/http"
	"time"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
)

// withLogging emits one access-log line per request through the
// trace-scoped logger installed by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", recorder.status).
			Int("size", recorder.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
