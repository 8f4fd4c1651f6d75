package matcher_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/seqmatch/matcher"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFind
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One number followed by one to four strings, in a mixed sequence.
//
// Options:
//   - defaults: embedded ranges discarded, numeric ordering.
//
// Complexity: paths = 1·4, walk O(paths·n·L_max)
func ExampleFind() {
	items := []any{45, "a", "b", "c", "d", "e", []any{}, 1, 19, 234, "wow.", "NO NO.", nil}

	isNumber := matcher.Func(func(v any, _ int, _ []any) bool { _, ok := v.(int); return ok })
	isString := matcher.Func(func(v any, _ int, _ []any) bool { _, ok := v.(string); return ok })

	matches, err := matcher.Find(context.Background(), items, matcher.Pattern[any]{
		{Min: 1, Max: 1, Predicate: isNumber},
		{Min: 1, Max: 4, Predicate: isString},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(matches)
	// Output:
	// [[0 1 2 3 4] [9 10 11]]
}

// ExampleMatcher_Evaluate keeps nested windows and uses typed items.
func ExampleMatcher_Evaluate() {
	words := strings.Fields("the big red dog ran home")
	short := matcher.Func(func(w string, _ int, _ []string) bool { return len(w) <= 3 })

	m, err := matcher.New(words, matcher.Pattern[string]{{Min: 2, Max: 3, Predicate: short}},
		matcher.WithDiscardEmbedded(false))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = m.Evaluate(context.Background()); err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, mt := range m.Matches() {
		fmt.Println(mt, words[mt.First():mt.Last()+1])
	}
	// Output:
	// [0 1] [the big]
	// [0 1 2] [the big red]
	// [1 2] [big red]
	// [1 2 3] [big red dog]
	// [2 3] [red dog]
	// [2 3 4] [red dog ran]
	// [3 4] [dog ran]
}

// ExampleSort contrasts the two ordering policies.
func ExampleSort() {
	ms := []matcher.Match{{10, 11}, {2, 3}}
	fmt.Println(matcher.Sort(ms, matcher.OrderNumeric))
	fmt.Println(matcher.Sort(ms, matcher.OrderLexical))
	// Output:
	// [[2 3] [10 11]]
	// [[10 11] [2 3]]
}
