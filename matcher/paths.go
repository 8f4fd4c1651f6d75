// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// paths.go — cartesian product of width lists (the "paths").
//
// Cost warning:
//   The number of paths is ∏ len(lists[i]) = ∏ (Max_i − Min_i + 1). It grows
//   multiplicatively with every condition and is the dominant cost of an
//   evaluation (each path is tried at every start offset). Keep quantifier
//   ranges and pattern length tractable; nothing here bounds it for you.

package matcher

import "math"

// PathCount returns the number of paths over lists, saturating at
// math.MaxInt. No lists, or any empty list, yields 0.
// Complexity: O(len(lists)).
func PathCount(lists [][]int) int {
	if len(lists) == 0 {
		return 0
	}
	count := 1
	for _, l := range lists {
		n := len(l)
		if n == 0 {
			return 0
		}
		if count > math.MaxInt/n {
			return math.MaxInt
		}
		count *= n
	}

	return count
}

// EachPath enumerates the cartesian product of lists with an index
// odometer: the first list varies slowest, the last fastest. fn receives a
// fresh Path per combination and may keep it; returning false stops the
// enumeration. No recursion is involved, so pattern length is bounded
// only by memory for a single Path.
//
// Implementation:
//   - Stage 1: bail out on no lists or any empty list (product is empty).
//   - Stage 2: emit the path selected by the digit vector.
//   - Stage 3: increment the last digit, carrying leftwards; a carry out of
//     digit 0 ends the enumeration.
//
// Complexity: O(PathCount·len(lists)) time, O(len(lists)) extra space.
func EachPath(lists [][]int, fn func(Path) bool) {
	if len(lists) == 0 {
		return
	}
	for _, l := range lists {
		if len(l) == 0 {
			return
		}
	}

	digits := make([]int, len(lists))
	for {
		p := make(Path, len(lists))
		for i, d := range digits {
			p[i] = lists[i][d]
		}
		if !fn(p) {
			return
		}

		// advance the odometer
		i := len(digits) - 1
		for ; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(lists[i]) {
				break
			}
			digits[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// Paths materialises EachPath. Prefer EachPath for large products.
func Paths(lists [][]int) []Path {
	out := make([]Path, 0, min(PathCount(lists), 1<<16))
	EachPath(lists, func(p Path) bool {
		out = append(out, p)

		return true
	})

	return out
}
