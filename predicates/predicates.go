// SPDX-License-Identifier: MIT
// Package: seqmatch/predicates
//
// predicates.go — type, value and structure predicates over `any` items,
// plus the boolean combinators.

package predicates

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/katalvlaran/seqmatch/matcher"
)

// P is the predicate type produced by this package.
type P = matcher.Predicate[any]

// test lifts a plain value test into a P.
func test(fn func(v any) bool) P {
	return func(_ context.Context, v any, _ int, _ []any) (bool, error) {
		return fn(v), nil
	}
}

// IsNil holds for nil and for typed nil pointers, maps, slices, funcs,
// channels and interfaces.
func IsNil() P { return test(isNil) }

// IsNumber holds for every Go integer and float kind and for json.Number.
// Booleans are not numbers.
func IsNumber() P {
	return test(func(v any) bool {
		_, ok := toFloat(v)

		return ok
	})
}

// IsString holds for string values (of any named string type) other than
// json.Number.
func IsString() P {
	return test(func(v any) bool {
		_, ok := asString(v)

		return ok
	})
}

// IsBool holds for bool values.
func IsBool() P {
	return test(func(v any) bool {
		return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
	})
}

// IsSlice holds for slices and arrays, including empty ones.
func IsSlice() P {
	return test(func(v any) bool {
		if v == nil {
			return false
		}
		k := reflect.TypeOf(v).Kind()

		return k == reflect.Slice || k == reflect.Array
	})
}

// Equal holds when the item equals want. Numbers compare by value across
// kinds (int 1 == float64 1 == json.Number "1"); everything else uses
// reflect.DeepEqual.
func Equal(want any) P {
	wantNum, wantIsNum := toFloat(want)

	return test(func(v any) bool {
		if wantIsNum {
			got, ok := toFloat(v)

			return ok && got == wantNum
		}

		return reflect.DeepEqual(v, want)
	})
}

// Zero is Equal(0).
func Zero() P { return Equal(0) }

// One is Equal(1).
func One() P { return Equal(1) }

// Field looks up a dot-separated path in map items (map[string]any nested
// to any depth) and applies p to the value found. Missing keys and
// non-map intermediates yield false without calling p.
func Field(path string, p P) P {
	keys := strings.Split(path, ".")

	return func(ctx context.Context, v any, index int, items []any) (bool, error) {
		cur, ok := lookup(v, keys)
		if !ok {
			return false, nil
		}

		return p(ctx, cur, index, items)
	}
}

// Not negates p. Errors pass through.
func Not(p P) P {
	return func(ctx context.Context, v any, index int, items []any) (bool, error) {
		ok, err := p(ctx, v, index, items)
		if err != nil {
			return false, err
		}

		return !ok, nil
	}
}

// All holds when every p holds; it stops at the first false or error.
// All() holds.
func All(ps ...P) P {
	return func(ctx context.Context, v any, index int, items []any) (bool, error) {
		for _, p := range ps {
			ok, err := p(ctx, v, index, items)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil
	}
}

// Any holds when some p holds; it stops at the first true or error.
// Any() does not hold.
func Any(ps ...P) P {
	return func(ctx context.Context, v any, index int, items []any) (bool, error) {
		for _, p := range ps {
			ok, err := p(ctx, v, index, items)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}

		return false, nil
	}
}

// ---------- helpers ----------

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// toFloat converts numeric kinds and json.Number to float64.
func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()

		return f, err == nil
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// asString unwraps string kinds. json.Number is a number, not a string.
func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}

// lookup walks keys through nested string-keyed maps.
func lookup(v any, keys []string) (any, bool) {
	cur := v
	for _, k := range keys {
		if cur == nil {
			return nil, false
		}
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		next := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if !next.IsValid() {
			return nil, false
		}
		cur = next.Interface()
	}

	return cur, true
}
