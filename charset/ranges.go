package charset

import "sort"

// Ranges returns a Matcher that matches any rune falling within one of the
// given Range entries.
//
// This is usually the best choice when most of the set's members are
// consecutive code points (e.g. "a-z", "0-9").
func Ranges(rs ...Range) Matcher {
	return &mRanges{Ranges: coalesceRanges(rs)}
}

type mRanges struct {
	Ranges []Range
}

var _ Matcher = (*mRanges)(nil)

func (m *mRanges) Match(r rune) bool {
	i := sort.Search(len(m.Ranges), func(i int) bool {
		return m.Ranges[i].Hi >= r
	})
	if i >= len(m.Ranges) {
		return false
	}
	rg := m.Ranges[i]
	return rg.Lo <= r && r <= rg.Hi
}

func (m *mRanges) String() string {
	return rangesString(m.Ranges)
}

// RangeList exposes the coalesced, sorted range table backing m, for
// introspection (the package tests use it). Enumerating every member rune
// the way a byte-domain set could is impractical over the full Unicode
// domain, so this returns ranges rather than individual runes.
func (m *mRanges) RangeList() []Range {
	out := make([]Range, len(m.Ranges))
	copy(out, m.Ranges)
	return out
}

func coalesceRanges(a []Range) []Range {
	// Guarantee: all entries have Lo <= Hi, no overlaps, sorted by Lo, and
	// adjacent or overlapping ranges are merged into one.
	b := make([]Range, 0, len(a))
	for _, r := range a {
		if r.Hi >= r.Lo {
			b = append(b, r)
		}
	}
	sort.Slice(b, func(i, j int) bool { return b[i].Lo < b[j].Lo })

	if len(b) < 2 {
		return b
	}

	c := make([]Range, 0, len(b))
	var lastHi rune
	var have bool
	for _, r := range b {
		switch {
		case have && lastHi >= r.Hi:
			// fully overlapping; discard the smaller range
		case have && lastHi+1 >= r.Lo:
			// adjacent or partially overlapping; merge
			c[len(c)-1].Hi = r.Hi
			lastHi = r.Hi
		default:
			c = append(c, r)
			lastHi = r.Hi
			have = true
		}
	}
	return c
}
