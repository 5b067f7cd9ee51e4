// Package filter parses 1-based position filters and turns them into a
// sorted, merged selection that can be applied to rows or columns.
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is the sentinel wrapped by every ParseError.
var ErrInvalidFormat = errors.New("invalid filter format")

// ParseError reports a filter token that does not match the grammar.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// Kind identifies the shape of a Range.
type Kind int

const (
	// Exact selects a single position: "n".
	Exact Kind = iota
	// Bounded selects n..m inclusive: "n:m".
	Bounded
	// FromStart selects 1..n inclusive: ":n".
	FromStart
	// ToEnd selects n..last inclusive: "n:".
	ToEnd
	// All selects the whole sequence: ":".
	All
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Bounded:
		return "bounded"
	case FromStart:
		return "from-start"
	case ToEnd:
		return "to-end"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Range is the parsed form of one filter token. End-relative kinds keep
// their open side unresolved until the sequence length is known.
//
// Start is used by Exact, Bounded and ToEnd. End is used by Bounded and
// FromStart. Bounded ranges may be inverted (Start > End).
type Range struct {
	Kind  Kind
	Start int
	End   int
}

// String renders the range back into filter syntax.
func (r Range) String() string {
	switch r.Kind {
	case Exact:
		return strconv.Itoa(r.Start)
	case Bounded:
		return fmt.Sprintf("%d:%d", r.Start, r.End)
	case FromStart:
		return fmt.Sprintf(":%d", r.End)
	case ToEnd:
		return fmt.Sprintf("%d:", r.Start)
	default:
		return ":"
	}
}

// Set is the parsed form of every filter token given to a run.
type Set []Range

// Parse turns one filter token into a Range. Surrounding whitespace is
// ignored.
func Parse(token string) (Range, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Range{}, &ParseError{Token: token, Reason: "empty filter"}
	}

	if strings.Count(s, ":") > 1 {
		return Range{}, &ParseError{Token: token, Reason: "more than one ':'"}
	}

	before, after, hasColon := strings.Cut(s, ":")
	if !hasColon {
		n, err := parsePosition(token, before)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: Exact, Start: n}, nil
	}

	switch {
	case before == "" && after == "":
		return Range{Kind: All}, nil
	case before == "":
		m, err := parsePosition(token, after)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: FromStart, End: m}, nil
	case after == "":
		n, err := parsePosition(token, before)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: ToEnd, Start: n}, nil
	}

	n, err := parsePosition(token, before)
	if err != nil {
		return Range{}, err
	}
	m, err := parsePosition(token, after)
	if err != nil {
		return Range{}, err
	}
	return Range{Kind: Bounded, Start: n, End: m}, nil
}

// ParseAll parses every token and stops at the first invalid one.
func ParseAll(tokens []string) (Set, error) {
	set := make(Set, 0, len(tokens))
	for _, tok := range tokens {
		r, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		set = append(set, r)
	}
	return set, nil
}

// parsePosition accepts only plain decimal digits with a value of at least 1.
func parsePosition(token, s string) (int, error) {
	if s == "" {
		return 0, &ParseError{Token: token, Reason: "missing position"}
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, &ParseError{Token: token, Reason: fmt.Sprintf("%q is not a positive integer", s)}
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Token: token, Reason: fmt.Sprintf("%q is out of range", s)}
	}
	if n < 1 {
		return 0, &ParseError{Token: token, Reason: "positions start at 1"}
	}
	return n, nil
}
