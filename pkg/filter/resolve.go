package filter

import (
	"cmp"
	"slices"
)

// Interval is a concrete [Lo, Hi] pair of 1-based inclusive positions.
type Interval struct {
	Lo int
	Hi int
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() int {
	return iv.Hi - iv.Lo + 1
}

// Selection is an ascending list of disjoint, non-adjacent intervals.
type Selection []Interval

// Len returns the total number of selected positions.
func (s Selection) Len() int {
	total := 0
	for _, iv := range s {
		total += iv.Len()
	}
	return total
}

// Contains reports whether the 1-based position pos is selected.
func (s Selection) Contains(pos int) bool {
	_, found := slices.BinarySearchFunc(s, pos, func(iv Interval, p int) int {
		if iv.Hi < p {
			return -1
		}
		if iv.Lo > p {
			return 1
		}
		return 0
	})
	return found
}

// resolve converts r into a concrete interval for a sequence of the given
// length. ok is false when nothing of r falls inside the sequence.
func (r Range) resolve(length int) (iv Interval, ok bool) {
	switch r.Kind {
	case Exact:
		iv = Interval{Lo: r.Start, Hi: r.Start}
	case Bounded:
		lo, hi := r.Start, r.End
		if lo > hi {
			lo, hi = hi, lo
		}
		iv = Interval{Lo: lo, Hi: hi}
	case FromStart:
		iv = Interval{Lo: 1, Hi: r.End}
	case ToEnd:
		iv = Interval{Lo: r.Start, Hi: length}
	case All:
		iv = Interval{Lo: 1, Hi: length}
	default:
		return Interval{}, false
	}

	iv.Lo = max(iv.Lo, 1)
	iv.Hi = min(iv.Hi, length)
	if iv.Lo > length || iv.Lo > iv.Hi {
		return Interval{}, false
	}
	return iv, true
}

// Resolve clamps every range of the set against length and merges the
// result into a Selection. Out-of-range filters contribute nothing.
func (s Set) Resolve(length int) Selection {
	return Resolve(s, length)
}

// Resolve clamps ranges against length and merges overlapping or adjacent
// intervals. The result is sorted by position.
func Resolve(ranges []Range, length int) Selection {
	if length <= 0 || len(ranges) == 0 {
		return Selection{}
	}

	resolved := make([]Interval, 0, len(ranges))
	for _, r := range ranges {
		if iv, ok := r.resolve(length); ok {
			resolved = append(resolved, iv)
		}
	}

	return merge(resolved)
}

func merge(ivs []Interval) Selection {
	if len(ivs) == 0 {
		return Selection{}
	}

	slices.SortFunc(ivs, func(a, b Interval) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})

	merged := make(Selection, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.Lo <= cur.Hi+1 {
			cur.Hi = max(cur.Hi, iv.Hi)
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	return append(merged, cur)
}
