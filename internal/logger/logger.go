// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the go-engineer-hub server.
//
// Request-scoped loggers travel in the request context: the trace-id
// middleware attaches one, and handlers, services and repositories pick it
// up again through FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stdout, tagged with role
// (e.g. "server", "migrations").
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New returns a JSON logger writing to w.
//
// Every entry carries a "role" field, a timestamp and a "func" field holding
// the fully-qualified name of the calling function.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// additional fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithUserID returns a child logger carrying the authenticated user's ID.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{l.With().Str("user_id", userID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
