// Package slice extracts columns or rows from text using 1-based position
// filters, a literal alternative to awk, head and tail for slicing.
//
// # Filters
//
// Each filter token selects positions:
//
//	n     position n
//	n:m   positions n through m (reversed bounds are swapped)
//	n:    position n through the last one
//	:n    the first position through n
//	:     everything
//
// Multiple filters are merged, so overlapping tokens select each position
// once and output always follows input order.
//
// # Basic Usage
//
//	out, err := slice.Columns("vault 1.8.4 dc15db720d79 2 days ago 186MB\n",
//	    slice.WithFilters("1", "4:6"))
//	// out == "vault 2 days ago\n"
//
//	out, err = slice.Rows(input, slice.WithFilters(":3"))
package slice

import (
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/slice/pkg/filter"
	"github.com/praetorian-inc/slice/pkg/slicer"
)

// Re-export commonly used types for convenience.
type (
	// Range is one parsed filter token.
	Range = filter.Range

	// Selection is a merged, ordered set of position intervals.
	Selection = filter.Selection

	// ParseError reports an invalid filter token.
	ParseError = filter.ParseError

	// Stats summarizes a slicing run.
	Stats = slicer.Stats
)

// ErrInvalidFormat is wrapped by every filter parse error.
var ErrInvalidFormat = filter.ErrInvalidFormat

type options struct {
	tokens     []string
	hasFilters bool
	delimiter  string
}

// Option configures a slicing call.
type Option func(*options)

// WithFilters adds filter tokens. Without this option the whole input is
// returned unchanged.
func WithFilters(tokens ...string) Option {
	return func(o *options) {
		o.tokens = append(o.tokens, tokens...)
		o.hasFilters = true
	}
}

// WithDelimiter splits columns on a literal delimiter instead of runs of
// whitespace. It has no effect on Rows.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// Rows returns the selected lines of input.
func Rows(input string, opts ...Option) (string, error) {
	return sliceString(slicer.Rows, input, opts)
}

// Columns returns the selected columns of every line of input, joined by
// single spaces.
func Columns(input string, opts ...Option) (string, error) {
	return sliceString(slicer.Columns, input, opts)
}

// SliceRows streams the selected lines of r to w.
func SliceRows(r io.Reader, w io.Writer, opts ...Option) (*Stats, error) {
	return sliceStream(slicer.Rows, r, w, opts)
}

// SliceColumns streams the selected columns of every line of r to w.
func SliceColumns(r io.Reader, w io.Writer, opts ...Option) (*Stats, error) {
	return sliceStream(slicer.Columns, r, w, opts)
}

// Parse parses a single filter token.
func Parse(token string) (Range, error) {
	return filter.Parse(token)
}

// Resolve parses tokens and merges them against a sequence of the given
// length.
func Resolve(tokens []string, length int) (Selection, error) {
	set, err := filter.ParseAll(tokens)
	if err != nil {
		return nil, err
	}
	return set.Resolve(length), nil
}

func sliceString(axis slicer.Axis, input string, opts []Option) (string, error) {
	var sb strings.Builder
	if _, err := sliceStream(axis, strings.NewReader(input), &sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func sliceStream(axis slicer.Axis, r io.Reader, w io.Writer, opts []Option) (*Stats, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	config := slicer.Config{Axis: axis, Delimiter: o.delimiter}
	if o.hasFilters {
		set, err := filter.ParseAll(o.tokens)
		if err != nil {
			return nil, fmt.Errorf("parsing filters: %w", err)
		}
		config.Filters = set
	}

	return slicer.New(config).Slice(r, w)
}
