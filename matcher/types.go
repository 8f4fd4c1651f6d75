// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// types.go — pattern vocabulary: predicates, conditions, paths and matches.

package matcher

import "context"

// Predicate reports whether item (at position index of items) satisfies a
// condition. It may block; the matcher calls predicates one at a time, in
// item-major then condition order, and stops at the first error.
//
// Predicates must be pure in (item, index, items) for the duration of one
// evaluation: results are cached in the predicate matrix and never re-asked.
type Predicate[T any] func(ctx context.Context, item T, index int, items []T) (bool, error)

// Func adapts an infallible, non-blocking test into a Predicate.
func Func[T any](fn func(item T, index int, items []T) bool) Predicate[T] {
	return func(_ context.Context, item T, index int, items []T) (bool, error) {
		return fn(item, index, items), nil
	}
}

// Condition pairs a Predicate with a repetition range: it consumes at
// least Min and at most Max consecutive items. Min == 0 makes it optional.
type Condition[T any] struct {
	Min       int
	Max       int
	Predicate Predicate[T]
}

// Pattern is an ordered, non-empty list of conditions. Sub-runs consumed
// by each condition are concatenated left to right in this order.
type Pattern[T any] []Condition[T]

// Path holds one chosen width per condition, in pattern order.
type Path []int

// Len returns the total window length covered by the path.
func (p Path) Len() int {
	total := 0
	for _, w := range p {
		total += w
	}

	return total
}

// Match is one accepted window: contiguous, strictly increasing item indices.
type Match []int

// First returns the first index of m. m must be non-empty.
func (m Match) First() int { return m[0] }

// Last returns the last index of m. m must be non-empty.
func (m Match) Last() int { return m[len(m)-1] }

// window builds the Match [start, start+length).
func window(start, length int) Match {
	m := make(Match, length)
	for i := range m {
		m[i] = start + i
	}

	return m
}
