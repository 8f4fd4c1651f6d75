// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// matcher.go — Matcher: validation, evaluation pipeline, published results.

package matcher

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/seqmatch/logging"
)

// Matcher evaluates one pattern against one item sequence.
//
// The pattern and items are captured at construction and treated as
// read-only. Each Evaluate builds its own width lists, predicate matrix and
// match list; on success the match set is published and observable through
// Matches, on failure the published set is cleared.
type Matcher[T any] struct {
	items   []T
	pattern Pattern[T]
	opts    Options
	log     logging.Logger
	tel     telemetry

	mu      sync.RWMutex
	matches []Match
}

// New validates pattern and returns a Matcher over items.
//
// Errors (configuration, nothing is evaluated):
//   - ErrEmptyPattern
//   - ErrNilPredicate, ErrNegativeBound, ErrInvertedBounds, wrapped with the
//     condition index.
func New[T any](items []T, pattern Pattern[T], opts ...Option) (*Matcher[T], error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	m := &Matcher[T]{
		items:   items,
		pattern: slices.Clone(pattern),
		opts:    o,
		log:     o.effectiveLogger(),
		tel:     newTelemetry(o),
	}
	m.log.Debug("matcher created", "items", len(items), "conditions", len(pattern))

	return m, nil
}

// Find is the one-shot form of New followed by Evaluate.
func Find[T any](ctx context.Context, items []T, pattern Pattern[T], opts ...Option) ([]Match, error) {
	m, err := New(items, pattern, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Evaluate(ctx); err != nil {
		return nil, err
	}

	return m.Matches(), nil
}

// Options returns the resolved configuration.
func (m *Matcher[T]) Options() Options { return m.opts }

// Matches returns a copy of the match set published by the last successful
// Evaluate (nil before the first one or after a failure).
func (m *Matcher[T]) Matches() []Match {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.matches == nil {
		return nil
	}
	out := make([]Match, len(m.matches))
	for i, mt := range m.matches {
		out[i] = slices.Clone(mt)
	}

	return out
}

// Evaluate runs the pipeline: width lists → predicate matrix → walk →
// embedded-range filter (optional) → sort.
//
// Predicates are called sequentially with ctx. The engine itself does not
// watch ctx for cancellation; a caller needing a deadline wraps Evaluate or
// makes its predicates honor ctx. Any error leaves no published matches.
func (m *Matcher[T]) Evaluate(ctx context.Context) error {
	t0 := time.Now()
	ctx, span := m.tel.start(ctx, spanEvaluate,
		attribute.Int("seqmatch.items", len(m.items)),
		attribute.Int("seqmatch.conditions", len(m.pattern)),
	)
	defer span.End()

	result, err := m.evaluate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.publish(nil)
		m.log.Debug("evaluate failed", "error", err, "elapsed", time.Since(t0))

		return err
	}

	m.publish(result)
	add(ctx, m.tel.matches, len(result))
	span.SetAttributes(attribute.Int("seqmatch.matches", len(result)))
	m.log.Debug("evaluate time", "elapsed", time.Since(t0))
	m.log.Debug("matches", "count", len(result))

	return nil
}

// evaluate runs the phases; it never touches the published state.
func (m *Matcher[T]) evaluate(ctx context.Context) ([]Match, error) {
	// widths and path summary
	t0 := time.Now()
	_, span := m.tel.start(ctx, spanCombinations)
	combos := NewCombinations(m.pattern)
	span.SetAttributes(attribute.Int("seqmatch.paths", combos.Count))
	span.End()
	m.log.Debug("combination build time", "elapsed", time.Since(t0))
	m.log.Debug("combinations", "maxWidth", combos.MaxWidth, "maxHeight", combos.MaxHeight)
	m.log.Debug("paths", "count", combos.Count)

	// predicate matrix
	t0 = time.Now()
	mctx, span := m.tel.start(ctx, spanPredicateMatrix)
	matrix, err := BuildPredicateMatrix(mctx, m.items, m.pattern)
	if err != nil {
		span.RecordError(err)
		span.End()

		return nil, err
	}
	span.End()
	add(ctx, m.tel.predicateCalls, matrix.Rows()*matrix.Cols())
	m.log.Debug("build predicate matrix time", "elapsed", time.Since(t0))
	m.log.Trace("predicate matrix", "grid", matrix.String())

	// walk
	t0 = time.Now()
	_, span = m.tel.start(ctx, spanWalk)
	matches, stats, err := walk(combos.Lists, matrix)
	add(ctx, m.tel.paths, stats.paths)
	if err != nil {
		span.RecordError(err)
		span.End()
		m.log.Error("walk aborted", "error", err)

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("seqmatch.windows", stats.windows),
		attribute.Int("seqmatch.raw_matches", len(matches)),
	)
	span.End()
	m.log.Debug("walk time", "elapsed", time.Since(t0), "windows", stats.windows, "raw", len(matches))

	// embedded ranges
	if m.opts.discardEmbedded {
		t0 = time.Now()
		_, span = m.tel.start(ctx, spanDiscardEmbedded)
		matches = DiscardEmbedded(matches)
		span.End()
		m.log.Debug("discardEmbeddedRanges", "elapsed", time.Since(t0), "kept", len(matches))
	} else {
		m.log.Debug("discardEmbeddedRanges: SKIPPED")
	}

	// final order
	t0 = time.Now()
	_, span = m.tel.start(ctx, spanSort, attribute.String("seqmatch.ordering", m.opts.ordering.String()))
	matches = Sort(matches, m.opts.ordering)
	span.End()
	m.log.Debug("sort", "elapsed", time.Since(t0), "ordering", m.opts.ordering.String())

	if matches == nil {
		matches = []Match{}
	}

	return matches, nil
}

// publish swaps the observable match set.
func (m *Matcher[T]) publish(matches []Match) {
	m.mu.Lock()
	m.matches = matches
	m.mu.Unlock()
}
