// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// widths.go — per-condition width candidates and their summary.

package matcher

// Widths lists the admissible consumption widths of c, from Max down to
// Min inclusive. The descending order fixes path iteration order (longer
// sub-runs are tried first); it does not affect which windows match.
// A condition with Min == 0 yields a trailing 0: it may consume nothing.
// Complexity: O(Max-Min+1).
func Widths[T any](c Condition[T]) []int {
	out := make([]int, 0, c.Max-c.Min+1)
	for w := c.Max; w >= c.Min; w-- {
		out = append(out, w)
	}

	return out
}

// WidthLists returns Widths for every condition, in pattern order.
func WidthLists[T any](pattern Pattern[T]) [][]int {
	lists := make([][]int, len(pattern))
	for i, c := range pattern {
		lists[i] = Widths(c)
	}

	return lists
}

// Combinations summarises the width lists of a pattern.
//
//   - Count     — number of paths (product of list lengths, saturating).
//   - MaxWidth  — longest width list.
//   - MaxHeight — number of lists (conditions).
type Combinations struct {
	Lists     [][]int
	Count     int
	MaxWidth  int
	MaxHeight int
}

// NewCombinations builds the width lists of pattern and their summary.
func NewCombinations[T any](pattern Pattern[T]) Combinations {
	lists := WidthLists(pattern)
	maxWidth := 0
	for _, l := range lists {
		maxWidth = max(maxWidth, len(l))
	}

	return Combinations{
		Lists:     lists,
		Count:     PathCount(lists),
		MaxWidth:  maxWidth,
		MaxHeight: len(lists),
	}
}
