// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// walk.go — the window search over every (path, start offset) pair.

package matcher

// walkStats reports how much work a walk did.
type walkStats struct {
	paths   int // paths enumerated
	windows int // (path, start) pairs whose window fit in the sequence
}

// walk tries every path at every start offset and collects the windows
// whose cells are all true in m.
//
// Implementation (per path p, per start s ascending):
//   - Stage 1: L = sum of p's widths; if s+L exceeds the sequence, reject.
//   - Stage 2: sub-run r covers the next p[r] indices; every index i in it
//     must satisfy m[i][r]. One false cell rejects the whole window.
//   - Stage 3: emit [s, s+L) when L > 0. Zero-width windows are never emitted.
//
// Result order: paths in generator order, starts ascending within a path.
// A lookup outside m is an internal defect and aborts with ErrOutOfRange.
//
// Complexity: O(PathCount · n · L_max) cell reads.
func walk(lists [][]int, m *PredicateMatrix) ([]Match, walkStats, error) {
	var (
		matches []Match
		stats   walkStats
		err     error
	)
	n := m.Rows()

	EachPath(lists, func(p Path) bool {
		stats.paths++
		length := p.Len()
		for start := 0; start < n; start++ {
			if start+length > n {
				// every later start is shorter on room too
				break
			}
			stats.windows++

			var ok bool
			ok, err = windowHolds(m, p, start)
			if err != nil {
				return false
			}
			if ok && length > 0 {
				matches = append(matches, window(start, length))
			}
		}

		return true
	})
	if err != nil {
		return nil, stats, err
	}

	return matches, stats, nil
}

// windowHolds checks the cells of the window of path p starting at start.
func windowHolds(m *PredicateMatrix, p Path, start int) (bool, error) {
	idx := start
	for cond, width := range p {
		for k := 0; k < width; k++ {
			cell, err := m.At(idx, cond)
			if err != nil {
				return false, err
			}
			if !cell {
				return false, nil
			}
			idx++
		}
	}

	return true, nil
}
