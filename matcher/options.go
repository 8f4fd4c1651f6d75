// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// options.go — functional options for New / Find.
//
// Contract:
//   • Option constructors validate and PANIC on nonsensical inputs
//     (programmer error). Evaluation itself never panics.
//   • Defaults live in DefaultOptions and the Default* constants.
//   • Options never change which windows are accepted; they select the
//     post-filter, the final order and the diagnostics sinks.

package matcher

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/seqmatch/logging"
)

// Defaults.
const (
	// DefaultDiscardEmbedded drops matches strictly contained in another match.
	DefaultDiscardEmbedded = true

	// DefaultDebug keeps the engine silent.
	DefaultDebug = false

	// DefaultOrdering sorts matches numerically.
	DefaultOrdering = OrderNumeric
)

const (
	panicNilLogger         = "matcher: WithLogger(nil)"
	panicUnknownOrdering   = "matcher: WithOrdering: unknown ordering"
	panicNilTracerProvider = "matcher: WithTracerProvider(nil)"
	panicNilMeterProvider  = "matcher: WithMeterProvider(nil)"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved matcher configuration. Fields are unexported;
// build it through DefaultOptions and Option setters.
type Options struct {
	discardEmbedded bool
	debug           bool
	ordering        Ordering
	logger          logging.Logger // nil ⇒ logging.Default() when debug is on

	tracerProvider trace.TracerProvider // nil ⇒ otel global
	meterProvider  metric.MeterProvider // nil ⇒ otel global
}

// DefaultOptions returns the zero-configuration behavior.
func DefaultOptions() Options {
	return Options{
		discardEmbedded: DefaultDiscardEmbedded,
		debug:           DefaultDebug,
		ordering:        DefaultOrdering,
	}
}

// DiscardEmbedded reports whether embedded ranges are filtered out.
func (o Options) DiscardEmbedded() bool { return o.discardEmbedded }

// Debug reports whether diagnostics are emitted.
func (o Options) Debug() bool { return o.debug }

// Ordering reports the final ordering policy.
func (o Options) Ordering() Ordering { return o.ordering }

// WithDiscardEmbedded toggles the embedded-range filter (default true).
// With false, every raw window survives, including those nested in others.
func WithDiscardEmbedded(discard bool) Option {
	return func(o *Options) { o.discardEmbedded = discard }
}

// WithDebug toggles diagnostics. When off, the engine logs to logging.Noop
// regardless of WithLogger.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.debug = debug }
}

// WithLogger injects the logger used in debug mode. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithOrdering selects the final ordering policy. Panics on unknown values.
func WithOrdering(ord Ordering) Option {
	if !ord.valid() {
		panic(panicUnknownOrdering)
	}

	return func(o *Options) { o.ordering = ord }
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// evaluation spans. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicNilTracerProvider)
	}

	return func(o *Options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the OpenTelemetry meter provider used for
// evaluation counters. Panics on nil.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic(panicNilMeterProvider)
	}

	return func(o *Options) { o.meterProvider = mp }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// effectiveLogger resolves the logger according to the debug switch.
func (o Options) effectiveLogger() logging.Logger {
	if !o.debug {
		return logging.Noop
	}
	if o.logger != nil {
		return o.logger
	}

	return logging.Default()
}
