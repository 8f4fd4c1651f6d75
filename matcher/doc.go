// Package matcher finds windows of a sequence that satisfy a pattern of
// quantified predicates — regular-expression style quantified groups, but
// over items of any type instead of characters.
//
// What:
//
//   - A Condition pairs a Predicate with a range [Min, Max]: it consumes
//     between Min and Max consecutive items that all satisfy the predicate.
//   - A Pattern is an ordered list of Conditions; a Match is a contiguous run
//     of item indices split left to right into one sub-run per condition.
//
// How an evaluation works:
//
//  1. Widths: each condition lists its admissible widths, Max down to Min.
//  2. Paths: the cartesian product of those lists, one width per condition
//     (iterative odometer; first condition varies slowest).
//  3. Predicate matrix: every predicate is called once per item, strictly
//     sequentially, and cached in an items × conditions grid.
//  4. Walk: every path is tried at every start offset; a window is accepted
//     when every cell of every sub-run is true and its length is > 0.
//  5. Embedded ranges (optional, on by default): matches strictly contained
//     in a longer match are dropped.
//  6. Ordering: OrderNumeric (default) or OrderLexical; see order.go.
//
// Cost:
//
//	paths = ∏ (Max_i − Min_i + 1)
//	walk  = O(paths · n · L_max)
//	embedded filter = O(k²) over k raw matches
//
// The path product is the dominant cost driver. Nothing bounds it for you:
// keep quantifier ranges and pattern length tractable.
//
// Errors:
//
//   - ErrEmptyPattern, ErrNilPredicate, ErrNegativeBound, ErrInvertedBounds —
//     returned by New before any work happens.
//   - predicate errors — returned by Evaluate unmodified; nothing is published.
//   - ErrOutOfRange — internal consistency failure in matrix lookups.
//
// Usage:
//
//	isNum := matcher.Func(func(v any, _ int, _ []any) bool { _, ok := v.(int); return ok })
//	isStr := matcher.Func(func(v any, _ int, _ []any) bool { _, ok := v.(string); return ok })
//
//	matches, err := matcher.Find(ctx, items, matcher.Pattern[any]{
//	    {Min: 1, Max: 1, Predicate: isNum},
//	    {Min: 1, Max: 4, Predicate: isStr},
//	})
//
// Diagnostics go through an injected logging.Logger (WithDebug, WithLogger)
// and OpenTelemetry (WithTracerProvider, WithMeterProvider); neither
// affects which windows match.
package matcher
