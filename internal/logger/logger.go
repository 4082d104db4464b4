// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across userdir.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info,
// Err, Fatal and friends) is available on *Logger directly. Request
// handlers should get their logger through FromContext or FromRequest
// rather than holding a package-level instance.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// configureZerolog applies the process-wide zerolog settings: everything
// from Debug up is emitted, and the caller field carries the
// fully-qualified function name under "func" instead of file:line.
func configureZerolog() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

func newLogger(out *os.File, role string) *Logger {
	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger builds the server-side *Logger. JSON entries go to stdout,
// each stamped with the given role label (e.g. "userdir-server"), a
// timestamp and the emitting function name.
func NewLogger(role string) *Logger {
	configureZerolog()
	return newLogger(os.Stdout, role)
}

// NewCLILogger builds a *Logger for command-line tooling. Entries are
// appended to a "logs" file next to the executable so they do not
// interleave with command output; stdout is the fallback when the file
// cannot be opened.
func NewCLILogger(role string) *Logger {
	configureZerolog()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	return newLogger(logFile, role)
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a *Logger inheriting the receiver's fields.
// Enriching the child leaves the parent untouched.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped *Logger attached to the request
// context by the trace middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the *Logger stored in ctx via zerolog's
// WithContext. When ctx carries none, zerolog hands back its global
// logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
