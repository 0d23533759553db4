// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// the constructors used by the configload command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Library packages take a plain zerolog.Logger; pass Logger.Logger to them.
package logger

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON
// entries to w at the given level ("debug", "info", ...). An empty level
// means info.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "ts" timestamp;
//   - a "func" caller field with the fully-qualified function name instead
//     of the default file:line format.
func NewLogger(role string, level string, w io.Writer) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.TimestampFieldName = "ts"

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, nil
}

// NewConsoleLogger is [NewLogger] with human-readable output, for
// interactive terminals.
func NewConsoleLogger(role string, level string, w io.Writer) (*Logger, error) {
	return NewLogger(role, level, zerolog.ConsoleWriter{Out: w, NoColor: true})
}

// GetChildLogger returns a logger scoped to one subcommand: every entry it
// writes carries the receiver's fields plus command.
func (l *Logger) GetChildLogger(command string) *Logger {
	return &Logger{l.With().Str("command", command).Logger()}
}

// FromContext returns the logger a command attached to ctx with
// [zerolog.Logger.WithContext]. Without one it returns a disabled logger,
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return lvl, nil
}
