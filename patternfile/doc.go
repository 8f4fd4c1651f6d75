// Package patternfile loads matcher patterns over heterogeneous items from
// YAML documents.
//
//	options:
//	  discardEmbeddedRanges: true   # matcher.WithDiscardEmbedded
//	  debug: false                  # matcher.WithDebug
//	  ordering: numeric             # numeric | lexical
//	conditions:
//	  - min: 1
//	    max: 2
//	    match: {field: partOfSpeech.tag, equals: VERB}
//
// Each match node names exactly one predicate (kind, equals, regexp, glob,
// containsAny, not, all, any), optionally scoped to a map field by a dot
// path. Bounds must be finite integers; negative or inverted bounds are
// reported with the matcher sentinels.
package patternfile
