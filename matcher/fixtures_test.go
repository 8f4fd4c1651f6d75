package matcher_test

import (
	"github.com/katalvlaran/seqmatch/matcher"
)

// Item predicates shared by the matcher tests. Items are `any`, with nil,
// ints, float64s, strings and slices mixed freely.

func isNumberValue(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}

var (
	isNumber = matcher.Func(func(v any, _ int, _ []any) bool { return isNumberValue(v) })
	isString = matcher.Func(func(v any, _ int, _ []any) bool { _, ok := v.(string); return ok })
	isNull   = matcher.Func(func(v any, _ int, _ []any) bool { return v == nil })
	isZero   = matcher.Func(func(v any, _ int, _ []any) bool { return v == 0 })
	isOne    = matcher.Func(func(v any, _ int, _ []any) bool { return v == 1 })
)

// cond is a terse Condition literal.
func cond(p matcher.Predicate[any], lo, hi int) matcher.Condition[any] {
	return matcher.Condition[any]{Min: lo, Max: hi, Predicate: p}
}

// mixedItems is the sequence used by the overlap scenarios.
var mixedItems = []any{45, "a", "b", "c", "d", "e", []any{}, 1, 19, 234, "wow.", "NO NO.", nil}
