// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the MatchBay client SDK.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger. The
// SDK never configures zerolog globals: every Logger is an independent
// instance, so an embedding application keeps full control of its own
// logging setup.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// package to add helper constructors without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "client",
// "runtime") writing JSON to os.Stderr at the given level.
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering SDK log lines out of
//     the host application's output;
//   - a "ts" timestamp field added to every entry.
func New(role string, level zerolog.Level) *Logger {
	return NewWithWriter(os.Stderr, role, level)
}

// NewWithWriter is like [New] but writes to w. Used in tests to capture
// output.
func NewWithWriter(w io.Writer, role string, level zerolog.Level) *Logger {
	l := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
