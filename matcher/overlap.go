// SPDX-License-Identifier: MIT
// Package: seqmatch/matcher
//
// overlap.go — removal of matches nested inside longer matches.

package matcher

// IsEmbedded reports whether a is strictly embedded in b: a is shorter and
// its closed index interval lies within b's. Equal-length ranges are never
// embedded in each other, so ties survive filtering. Empty inputs are never
// embedded and never embed.
// Complexity: O(1).
func IsEmbedded(a, b Match) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	return len(a) < len(b) && a.First() >= b.First() && a.Last() <= b.Last()
}

// DiscardEmbedded keeps the matches that are not embedded in any other
// match, preserving their relative order. The input is not modified.
// Complexity: O(k²) for k matches.
func DiscardEmbedded(matches []Match) []Match {
	kept := make([]Match, 0, len(matches))
	for i, a := range matches {
		embedded := false
		for j, b := range matches {
			if i != j && IsEmbedded(a, b) {
				embedded = true

				break
			}
		}
		if !embedded {
			kept = append(kept, a)
		}
	}

	return kept
}
