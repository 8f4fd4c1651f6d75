// Package predicates provides ready-made matcher.Predicate[any] values for
// heterogeneous sequences such as decoded JSON arrays.
//
//   - Types: IsNil, IsNumber, IsString, IsBool, IsSlice
//   - Values: Equal (numbers compared by value across kinds), Zero, One
//   - Text: Regexp (coregex), Glob (zyedidia/glob), ContainsAny (Aho–Corasick)
//   - Structure: Field applies a predicate to a dot-path inside map items
//   - Combinators: Not, All, Any
//
// Text predicates compile once and return an error for invalid input;
// everything else is infallible.
package predicates
