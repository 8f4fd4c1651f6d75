// SPDX-License-Identifier: MIT
// Package: seqmatch/patternfile
//
// errors.go — sentinel errors for pattern documents.
//
// Every error returned by Load is wrapped with its location in the document
// (condition index, predicate path), so errors.Is works on the sentinels
// below and on the matcher sentinels reported by matcher.Validate.

package patternfile

import "github.com/pkg/errors"

var (
	// ErrEmptyDocument indicates an input without any YAML document.
	ErrEmptyDocument = errors.New("patternfile: empty document")

	// ErrMissingBound indicates a condition without min or max.
	ErrMissingBound = errors.New("patternfile: condition needs both min and max")

	// ErrNonFiniteBound indicates a bound of .inf, -.inf or .nan.
	ErrNonFiniteBound = errors.New("patternfile: condition bound must be finite")

	// ErrFractionalBound indicates a bound with a fractional part.
	ErrFractionalBound = errors.New("patternfile: condition bound must be an integer")

	// ErrBoundOverflow indicates a bound beyond MaxBound.
	ErrBoundOverflow = errors.New("patternfile: condition bound too large")

	// ErrPrimaryKey indicates a predicate node with zero or several primary keys.
	ErrPrimaryKey = errors.New("patternfile: predicate needs exactly one of kind, equals, regexp, glob, containsAny, not, all, any")

	// ErrUnknownKind indicates an unsupported value for the kind key.
	ErrUnknownKind = errors.New("patternfile: unknown kind")

	// ErrUnknownKey indicates an unsupported key inside a predicate node.
	ErrUnknownKey = errors.New("patternfile: unknown predicate key")
)
