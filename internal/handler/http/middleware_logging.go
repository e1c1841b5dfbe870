package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log line per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
