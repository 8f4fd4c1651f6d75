// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// telemetry.go — OpenTelemetry spans and counters for evaluations.
// Without an installed SDK the global providers are no-ops.

package matcher

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the tracer and meter.
const instrumentationName = "github.com/katalvlaran/seqmatch/matcher"

// Span and metric names.
const (
	spanEvaluate        = "seqmatch.evaluate"
	spanCombinations    = "seqmatch.combinations"
	spanPredicateMatrix = "seqmatch.predicate_matrix"
	spanWalk            = "seqmatch.walk"
	spanDiscardEmbedded = "seqmatch.discard_embedded"
	spanSort            = "seqmatch.sort"

	metricPredicateCalls = "seqmatch.predicate.calls"
	metricPaths          = "seqmatch.paths"
	metricMatches        = "seqmatch.matches"
)

// telemetry bundles the tracer and counters of one Matcher.
type telemetry struct {
	tracer         trace.Tracer
	predicateCalls metric.Int64Counter
	paths          metric.Int64Counter
	matches        metric.Int64Counter
}

// newTelemetry resolves providers (falling back to the otel globals) and
// creates the instruments. Instrument creation failures leave no-op
// counters in place; telemetry never fails an evaluation.
func newTelemetry(o Options) telemetry {
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := o.meterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	calls, _ := meter.Int64Counter(metricPredicateCalls,
		metric.WithDescription("Predicate invocations while building predicate matrices"))
	paths, _ := meter.Int64Counter(metricPaths,
		metric.WithDescription("Width paths enumerated by window walks"))
	matches, _ := meter.Int64Counter(metricMatches,
		metric.WithDescription("Matches returned by successful evaluations"))

	return telemetry{
		tracer:         tp.Tracer(instrumentationName),
		predicateCalls: calls,
		paths:          paths,
		matches:        matches,
	}
}

// start opens a child span.
func (t telemetry) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// add increments c when it exists.
func add(ctx context.Context, c metric.Int64Counter, n int) {
	if c != nil {
		c.Add(ctx, int64(n))
	}
}
