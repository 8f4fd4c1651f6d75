// SPDX-License-Identifier: MIT
// Package: seqmatch/logging
//
// logging.go — the leveled logging capability consumed by the matcher.
//
// Contract:
//   • Logger is a strategy object injected through options; it never
//     influences matching semantics.
//   • Noop is the default; Default() is the stderr logger used in debug mode.
//   • Adapters exist for go-logr (logr.Logger) and log/slog so applications
//     can route engine diagnostics into their own pipeline.

package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Verbosity levels used when mapping onto logr's V-levels.
const (
	traceV = 2 // logr.V(2) carries Trace
	debugV = 1 // logr.V(1) carries Debug
)

// slogLevelTrace sits one step below slog.LevelDebug.
const slogLevelTrace = slog.LevelDebug - 4

// Logger is a leveled, structured logger. keysAndValues alternate
// key (string) and value, as in logr and slog.
type Logger interface {
	Trace(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// noop discards everything.
type noop struct{}

func (noop) Trace(string, ...any) {}
func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// Noop is the null Logger.
var Noop Logger = noop{}

// logrLogger maps the five levels onto a logr.Logger.
type logrLogger struct {
	l logr.Logger
}

// FromLogr adapts a logr.Logger.
//
// Mapping:
//   - Trace → V(2).Info
//   - Debug → V(1).Info
//   - Info  → Info
//   - Warn  → Info with "severity"="warn"
//   - Error → Error(nil, ...)
func FromLogr(l logr.Logger) Logger {
	return logrLogger{l: l}
}

func (a logrLogger) Trace(msg string, kv ...any) { a.l.V(traceV).Info(msg, kv...) }
func (a logrLogger) Debug(msg string, kv ...any) { a.l.V(debugV).Info(msg, kv...) }
func (a logrLogger) Info(msg string, kv ...any)  { a.l.Info(msg, kv...) }
func (a logrLogger) Warn(msg string, kv ...any) {
	a.l.Info(msg, append([]any{"severity", "warn"}, kv...)...)
}
func (a logrLogger) Error(msg string, kv ...any) { a.l.Error(nil, msg, kv...) }

// slogLogger maps the five levels onto a *slog.Logger.
type slogLogger struct {
	l *slog.Logger
}

// FromSlog adapts a *slog.Logger. Trace is emitted at slog.LevelDebug-4,
// so it only shows up on handlers configured below debug. A nil logger
// adapts slog.Default().
func FromSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}

	return slogLogger{l: l}
}

func (a slogLogger) Trace(msg string, kv ...any) {
	a.l.Log(context.Background(), slogLevelTrace, msg, kv...)
}
func (a slogLogger) Debug(msg string, kv ...any) { a.l.Debug(msg, kv...) }
func (a slogLogger) Info(msg string, kv ...any)  { a.l.Info(msg, kv...) }
func (a slogLogger) Warn(msg string, kv ...any)  { a.l.Warn(msg, kv...) }
func (a slogLogger) Error(msg string, kv ...any) { a.l.Error(msg, kv...) }

// Default returns the diagnostic logger used when debug mode is on and no
// logger was injected: stdr over a stderr *log.Logger, all levels enabled.
func Default() Logger { return New(os.Stderr) }

// New returns a stdr-backed Logger writing timestamped lines to w.
func New(w io.Writer) Logger {
	std := log.New(w, "seqmatch ", log.LstdFlags|log.Lmicroseconds)
	stdr.SetVerbosity(traceV)

	return FromLogr(stdr.New(std))
}
