package logx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger returns chi middleware that logs every request through zerolog.
func RequestLogger() func(http.Handler) http.Handler {
	return middleware.RequestLogger(&requestFormatter{})
}

type requestFormatter struct{}

func (f *requestFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	l := log.With().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("remote", r.RemoteAddr).
		Logger()
	return &requestEntry{logger: l}
}

type requestEntry struct {
	logger zerolog.Logger
}

func (e *requestEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	ev := e.logger.Info()
	if status >= http.StatusInternalServerError {
		ev = e.logger.Error()
	}
	ev.Int("status", status).
		Int("bytes", bytes).
		Dur("elapsed", elapsed).
		Msg("request")
}

func (e *requestEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error().
		Interface("panic", v).
		Bytes("stack", stack).
		Msg("request panicked")
}
