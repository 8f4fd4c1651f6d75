// SPDX-License-Identifier: MIT
// Package: seqmatch/patternfile
//
// predicate.go — the predicate node of a pattern document and its
// compilation into predicates.P.
//
// Node shape (YAML mapping):
//   field:       optional dot path; the primary predicate applies to the value found there
//   kind:        isNil | isNumber | isString | isBool | isSlice
//   equals:      any scalar or structure (null included)
//   regexp:      Perl-syntax expression
//   glob:        shell-style pattern
//   containsAny: [keyword, ...]
//   not:         node
//   all:         [node, ...]
//   any:         [node, ...]
// Exactly one key other than field must be present.

package patternfile

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqmatch/predicates"
)

// Kinds accepted by the kind key.
const (
	KindNil    = "isNil"
	KindNumber = "isNumber"
	KindString = "isString"
	KindBool   = "isBool"
	KindSlice  = "isSlice"
)

var kinds = map[string]func() predicates.P{
	KindNil:    predicates.IsNil,
	KindNumber: predicates.IsNumber,
	KindString: predicates.IsString,
	KindBool:   predicates.IsBool,
	KindSlice:  predicates.IsSlice,
}

// PredicateSpec is one decoded predicate node.
type PredicateSpec struct {
	Field       string
	Kind        string
	Equals      any
	HasEquals   bool // distinguishes `equals: null` from an absent key
	Regexp      *string
	Glob        *string
	ContainsAny []string
	Not         *PredicateSpec
	All         []PredicateSpec
	Any         []PredicateSpec
}

// UnmarshalYAML decodes a predicate mapping, rejecting unknown keys.
func (s *PredicateSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: predicate must be a mapping", value.Line)
	}
	var out PredicateSpec
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]
		var err error
		switch key.Value {
		case "field":
			err = node.Decode(&out.Field)
		case "kind":
			err = node.Decode(&out.Kind)
		case "equals":
			out.HasEquals = true
			err = node.Decode(&out.Equals)
		case "regexp":
			out.Regexp = new(string)
			err = node.Decode(out.Regexp)
		case "glob":
			out.Glob = new(string)
			err = node.Decode(out.Glob)
		case "containsAny":
			out.ContainsAny = []string{}
			err = node.Decode(&out.ContainsAny)
		case "not":
			out.Not = new(PredicateSpec)
			err = node.Decode(out.Not)
		case "all":
			out.All = []PredicateSpec{}
			err = node.Decode(&out.All)
		case "any":
			out.Any = []PredicateSpec{}
			err = node.Decode(&out.Any)
		default:
			return errors.Wrapf(ErrUnknownKey, "line %d: %q", key.Line, key.Value)
		}
		if err != nil {
			return errors.Wrapf(err, "line %d: key %q", key.Line, key.Value)
		}
	}
	*s = out

	return nil
}

// primaries lists the primary keys present on the node.
func (s *PredicateSpec) primaries() []string {
	var keys []string
	if s.Kind != "" {
		keys = append(keys, "kind")
	}
	if s.HasEquals {
		keys = append(keys, "equals")
	}
	if s.Regexp != nil {
		keys = append(keys, "regexp")
	}
	if s.Glob != nil {
		keys = append(keys, "glob")
	}
	if s.ContainsAny != nil {
		keys = append(keys, "containsAny")
	}
	if s.Not != nil {
		keys = append(keys, "not")
	}
	if s.All != nil {
		keys = append(keys, "all")
	}
	if s.Any != nil {
		keys = append(keys, "any")
	}

	return keys
}

// Compile turns the node into a predicate. The returned error names the
// offending node by path (e.g. "all[1].not").
func (s *PredicateSpec) Compile() (predicates.P, error) {
	keys := s.primaries()
	if len(keys) != 1 {
		return nil, errors.Wrapf(ErrPrimaryKey, "found [%s]", strings.Join(keys, ", "))
	}

	var (
		p   predicates.P
		err error
	)
	switch keys[0] {
	case "kind":
		ctor, ok := kinds[s.Kind]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownKind, "%q", s.Kind)
		}
		p = ctor()
	case "equals":
		p = predicates.Equal(s.Equals)
	case "regexp":
		p, err = predicates.Regexp(*s.Regexp)
	case "glob":
		p, err = predicates.Glob(*s.Glob)
	case "containsAny":
		p, err = predicates.ContainsAny(s.ContainsAny...)
	case "not":
		var inner predicates.P
		if inner, err = s.Not.Compile(); err != nil {
			return nil, errors.Wrap(err, "not")
		}
		p = predicates.Not(inner)
	case "all":
		var list []predicates.P
		if list, err = compileList("all", s.All); err != nil {
			return nil, err
		}
		p = predicates.All(list...)
	case "any":
		var list []predicates.P
		if list, err = compileList("any", s.Any); err != nil {
			return nil, err
		}
		p = predicates.Any(list...)
	}
	if err != nil {
		return nil, errors.Wrap(err, keys[0])
	}

	if s.Field != "" {
		p = predicates.Field(s.Field, p)
	}

	return p, nil
}

func compileList(key string, specs []PredicateSpec) ([]predicates.P, error) {
	out := make([]predicates.P, 0, len(specs))
	for i := range specs {
		p, err := specs[i].Compile()
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("%s[%d]", key, i))
		}
		out = append(out, p)
	}

	return out, nil
}
