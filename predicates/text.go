// SPDX-License-Identifier: MIT
// Package: seqmatch/predicates
//
// text.go — string predicates backed by compiled matchers. Each is false on
// items that are not strings. Compilation happens once, at construction.

package predicates

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/coregex"
	"github.com/pkg/errors"
	"github.com/zyedidia/glob"
)

// ErrNoKeywords indicates ContainsAny was called without keywords.
var ErrNoKeywords = errors.New("predicates: ContainsAny needs at least one keyword")

// Regexp holds for strings containing a match of expr (Perl syntax).
func Regexp(expr string) (P, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "can't compile regexp %q", expr)
	}

	return test(func(v any) bool {
		s, ok := asString(v)

		return ok && re.MatchString(s)
	}), nil
}

// Glob holds for strings matching the shell-style pattern as a whole.
func Glob(pattern string) (P, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "can't compile glob pattern %q", pattern)
	}

	return test(func(v any) bool {
		s, ok := asString(v)

		return ok && g.MatchString(s)
	}), nil
}

// ContainsAny holds for strings containing at least one of keywords
// (case-sensitive, single Aho–Corasick pass).
func ContainsAny(keywords ...string) (P, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}
	b := ahocorasick.NewBuilder()
	for _, k := range keywords {
		b.AddPattern([]byte(k))
	}
	auto, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "can't build keyword automaton")
	}

	return test(func(v any) bool {
		s, ok := asString(v)

		return ok && auto.IsMatch([]byte(s))
	}), nil
}
