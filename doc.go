// Package seqmatch finds windows of a sequence that satisfy a pattern of
// repeated conditions, the way a regular expression matches runs of
// characters, but over arbitrary Go values.
//
// What is seqmatch?
//
//	A pattern is an ordered list of conditions. Each condition pairs a
//	predicate with a repetition range [min, max]. A window of items matches
//	when it splits into consecutive blocks, block i of some width in
//	[min_i, max_i], every item of block i satisfying predicate i.
//
//		• Exhaustive: every window is reported, not the leftmost-longest one
//		• Deterministic: fixed evaluation order, stable sorted output
//
// Under the hood:
//
//	matcher/     — patterns, width enumeration, predicate matrix, walk, ordering
//	predicates/  — ready-made predicates over decoded JSON/YAML values
//	patternfile/ — YAML pattern documents
//	logging/     — the Logger capability and its logr/slog adapters
//	cmd/seqmatch — command line front end
//	examples/    — part-of-speech chunking and log triage
//
// Quick example (a number followed by one to four strings):
//
//	items:   45  "a" "b" "c" "d" "e"  []  1  19  234 "wow." "NO NO."  nil
//	index:    0   1   2   3   4   5    6  7   8    9   10      11     12
//	matches: [0 1 2 3 4]  [9 10 11]
//
//	go get github.com/katalvlaran/seqmatch/matcher
package seqmatch
