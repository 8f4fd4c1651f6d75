// SPDX-License-Identifier: MIT
// Package: seqmatch/patternfile
//
// document.go — Load / LoadFile: decode, validate and compile a pattern
// document into a matcher.Pattern[any] and its matcher options.

package patternfile

import (
	"io"
	"math"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqmatch/matcher"
)

// MaxBound is the largest accepted min/max value.
const MaxBound = math.MaxInt32

// Document is a decoded and compiled pattern document.
type Document struct {
	Settings   OptionsSpec     `yaml:"options"`
	Conditions []ConditionSpec `yaml:"conditions"`

	pattern matcher.Pattern[any]
	opts    []matcher.Option
}

// OptionsSpec mirrors the matcher options. Absent keys keep the matcher
// defaults.
type OptionsSpec struct {
	DiscardEmbeddedRanges *bool  `yaml:"discardEmbeddedRanges"`
	Debug                 *bool  `yaml:"debug"`
	Ordering              string `yaml:"ordering"`
}

// ConditionSpec is one pattern condition. Bounds decode as floats so that
// non-finite and fractional values are reported instead of truncated.
type ConditionSpec struct {
	Min   *float64      `yaml:"min"`
	Max   *float64      `yaml:"max"`
	Match PredicateSpec `yaml:"match"`
}

// Load decodes the first YAML document of r. Unknown keys are errors.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, errors.Wrap(err, "can't decode pattern document")
	}
	if err := doc.compile(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open pattern file")
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return doc, nil
}

// Pattern returns a copy of the compiled pattern.
func (d *Document) Pattern() matcher.Pattern[any] { return slices.Clone(d.pattern) }

// Options returns the matcher options set by the document.
func (d *Document) Options() []matcher.Option { return slices.Clone(d.opts) }

func (d *Document) compile() error {
	pattern := make(matcher.Pattern[any], 0, len(d.Conditions))
	for i := range d.Conditions {
		c, err := d.Conditions[i].compile()
		if err != nil {
			return errors.Wrapf(err, "condition %d", i)
		}
		pattern = append(pattern, c)
	}
	if err := matcher.Validate(pattern); err != nil {
		return errors.Wrap(err, "invalid pattern")
	}

	opts, err := d.Settings.compile()
	if err != nil {
		return errors.Wrap(err, "options")
	}
	d.pattern, d.opts = pattern, opts

	return nil
}

func (c *ConditionSpec) compile() (matcher.Condition[any], error) {
	lo, err := bound("min", c.Min)
	if err != nil {
		return matcher.Condition[any]{}, err
	}
	hi, err := bound("max", c.Max)
	if err != nil {
		return matcher.Condition[any]{}, err
	}
	p, err := c.Match.Compile()
	if err != nil {
		return matcher.Condition[any]{}, errors.Wrap(err, "match")
	}

	return matcher.Condition[any]{Min: lo, Max: hi, Predicate: p}, nil
}

// bound converts a decoded bound. Negative values pass through; the matcher
// rejects them with ErrNegativeBound.
func bound(name string, v *float64) (int, error) {
	switch {
	case v == nil:
		return 0, errors.Wrap(ErrMissingBound, name)
	case math.IsInf(*v, 0) || math.IsNaN(*v):
		return 0, errors.Wrapf(ErrNonFiniteBound, "%s=%v", name, *v)
	case *v != math.Trunc(*v):
		return 0, errors.Wrapf(ErrFractionalBound, "%s=%v", name, *v)
	case math.Abs(*v) > MaxBound:
		return 0, errors.Wrapf(ErrBoundOverflow, "%s=%v", name, *v)
	}

	return int(*v), nil
}

func (o *OptionsSpec) compile() ([]matcher.Option, error) {
	var opts []matcher.Option
	if o.DiscardEmbeddedRanges != nil {
		opts = append(opts, matcher.WithDiscardEmbedded(*o.DiscardEmbeddedRanges))
	}
	if o.Debug != nil {
		opts = append(opts, matcher.WithDebug(*o.Debug))
	}
	if o.Ordering != "" {
		ord, err := matcher.ParseOrdering(o.Ordering)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matcher.WithOrdering(ord))
	}

	return opts, nil
}
