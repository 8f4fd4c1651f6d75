// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// order.go — the final ordering policy of a match set.
//
// Two policies exist and the choice is always explicit:
//
//   - OrderNumeric (default): first index ascending, then length ascending,
//     then element-wise. [2 3] sorts before [10 11].
//   - OrderLexical: compares the comma-joined decimal rendering of each
//     match ("0,1,2"), byte-wise. This reproduces the ordering of a
//     comparator-free array sort and is kept for compatibility with result
//     sets produced that way: "10,11" sorts before "2,3".
//
// Both sorts are stable. They agree whenever all indices have one digit.

package matcher

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Ordering selects how the final match set is sorted.
type Ordering int

const (
	// OrderNumeric sorts by first index, then length, then element-wise.
	OrderNumeric Ordering = iota

	// OrderLexical sorts by the comma-joined string rendering of each match.
	OrderLexical
)

// String returns the policy name accepted by ParseOrdering.
func (o Ordering) String() string {
	switch o {
	case OrderNumeric:
		return "numeric"
	case OrderLexical:
		return "lexical"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

func (o Ordering) valid() bool {
	return o == OrderNumeric || o == OrderLexical
}

// ParseOrdering maps "numeric" / "lexical" (case-insensitive) to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric", "":
		return OrderNumeric, nil
	case "lexical":
		return OrderLexical, nil
	default:
		return 0, fmt.Errorf("matcher: unknown ordering %q", s)
	}
}

// Sort returns a sorted copy of matches under ord. The input is not modified.
// Complexity: O(k log k · L) for k matches of length ≤ L.
func Sort(matches []Match, ord Ordering) []Match {
	out := slices.Clone(matches)
	switch ord {
	case OrderLexical:
		keys := make([]string, len(out))
		idx := make([]int, len(out))
		for i, m := range out {
			idx[i] = i
			keys[i] = lexicalKey(m)
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			return strings.Compare(keys[a], keys[b])
		})
		sorted := make([]Match, len(out))
		for i, j := range idx {
			sorted[i] = out[j]
		}

		return sorted
	default:
		slices.SortStableFunc(out, compareNumeric)

		return out
	}
}

// compareNumeric orders by first index, then length, then element-wise.
func compareNumeric(a, b Match) int {
	if len(a) > 0 && len(b) > 0 {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return slices.Compare(a, b)
}

// lexicalKey renders m as "i0,i1,...".
func lexicalKey(m Match) string {
	var sb strings.Builder
	for i, v := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
