// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// errors.go — sentinel errors for the matcher package.
//
// Error policy:
//   • Configuration errors are returned by New, never mid-evaluation, and
//     carry the offending condition index via %w wrapping.
//   • Predicate errors are returned by Evaluate exactly as the predicate
//     produced them.
//   • ErrOutOfRange marks an internal consistency failure (a lookup outside
//     the built predicate matrix). It is terminal for the evaluation.
//   • Callers branch with errors.Is, never on message text.

package matcher

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern indicates a pattern without conditions.
	ErrEmptyPattern = errors.New("matcher: pattern cannot be empty (it needs at least one condition)")

	// ErrNegativeBound indicates a condition with Min < 0 (and hence possibly Max < 0).
	ErrNegativeBound = errors.New("matcher: condition bounds must be non-negative")

	// ErrInvertedBounds indicates a condition with Min > Max.
	ErrInvertedBounds = errors.New("matcher: condition min must not exceed max")

	// ErrNilPredicate indicates a condition without a predicate.
	ErrNilPredicate = errors.New("matcher: condition predicate is nil")

	// ErrOutOfRange indicates a predicate matrix lookup outside its built shape.
	ErrOutOfRange = errors.New("matcher: predicate matrix index out of range")
)

// conditionErrorf attaches the condition index to a configuration sentinel.
func conditionErrorf(index int, err error) error {
	return fmt.Errorf("condition %d: %w", index, err)
}

// Validate checks the structural invariants of a pattern; New calls it
// before anything else. Exposed for loaders that want to fail early.
// Stage 1: reject empty patterns.
// Stage 2: per condition, reject nil predicates, negative and inverted bounds.
// Complexity: O(len(pattern)).
func Validate[T any](pattern Pattern[T]) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	for i, c := range pattern {
		if c.Predicate == nil {
			return conditionErrorf(i, ErrNilPredicate)
		}
		if c.Min < 0 || c.Max < 0 {
			return conditionErrorf(i, ErrNegativeBound)
		}
		if c.Min > c.Max {
			return conditionErrorf(i, ErrInvertedBounds)
		}
	}

	return nil
}
