// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// predicate_matrix.go — cached predicate outcomes, items × conditions.

package matcher

import (
	"context"
	"fmt"
	"strings"
)

// PredicateMatrix is a row-major boolean grid: row i is item i, column c is
// condition c. Built once per evaluation and read-only afterwards.
type PredicateMatrix struct {
	rows, cols int
	data       []bool // len == rows*cols
}

// matrixErrorf wraps ErrOutOfRange with the failing coordinates.
func matrixErrorf(method string, row, col int) error {
	return fmt.Errorf("PredicateMatrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}

// BuildPredicateMatrix evaluates every condition's predicate on every item.
//
// Implementation:
//   - Stage 1: allocate len(items)×len(pattern) cells.
//   - Stage 2: for each item in order, for each condition in order, call the
//     predicate and store the outcome. One call in flight at a time.
//   - Stage 3: on the first predicate error, return that error unmodified;
//     the partial matrix is dropped.
//
// Complexity: O(len(items)·len(pattern)) predicate calls.
func BuildPredicateMatrix[T any](ctx context.Context, items []T, pattern Pattern[T]) (*PredicateMatrix, error) {
	m := &PredicateMatrix{
		rows: len(items),
		cols: len(pattern),
		data: make([]bool, len(items)*len(pattern)),
	}
	for i, item := range items {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for c, cond := range pattern {
			ok, err := cond.Predicate(ctx, item, i, items)
			if err != nil {
				return nil, err
			}
			row[c] = ok
		}
	}

	return m, nil
}

// Rows returns the number of items covered.
func (m *PredicateMatrix) Rows() int { return m.rows }

// Cols returns the number of conditions covered.
func (m *PredicateMatrix) Cols() int { return m.cols }

// At returns the cached outcome of condition col on item row, or a wrapped
// ErrOutOfRange when either index is outside the built shape.
// Complexity: O(1).
func (m *PredicateMatrix) At(row, col int) (bool, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false, matrixErrorf("At", row, col)
	}

	return m.data[row*m.cols+col], nil
}

// String renders the grid one item per line, 1 for true and 0 for false.
func (m *PredicateMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.data[i*m.cols+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
