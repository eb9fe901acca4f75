package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so withLogging can report
// the status code and body size after the handler returns, without buffering
// the response. WriteHeader reaches the underlying writer exactly once;
// repeats are ignored, and a Write before any WriteHeader implies 200.
type responseWriter struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
