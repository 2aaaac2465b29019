package charset

import "sort"

// SparseSet returns a Matcher that matches any of the given runes.
//
// Best choice for a small set of mostly non-consecutive runes.
func SparseSet(given ...rune) Matcher {
	set := make(map[rune]struct{}, len(given))
	for _, r := range given {
		set[r] = struct{}{}
	}
	return &mSparse{Set: set}
}

type mSparse struct {
	Set map[rune]struct{}
}

var _ Matcher = (*mSparse)(nil)

func (m *mSparse) Match(r rune) bool {
	_, found := m.Set[r]
	return found
}

func (m *mSparse) String() string {
	sorted := m.sorted()
	return runesString(sorted)
}

// RangeList returns each member as a length-1 Range, sorted ascending, for
// introspection parity with mRanges.
func (m *mSparse) RangeList() []Range {
	sorted := m.sorted()
	out := make([]Range, len(sorted))
	for i, r := range sorted {
		out[i] = Range{Lo: r, Hi: r}
	}
	return out
}

func (m *mSparse) sorted() []rune {
	out := make([]rune, 0, len(m.Set))
	for r := range m.Set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Exactly returns a Matcher that matches exactly one rune.
func Exactly(r rune) Matcher {
	return &mExact{Rune: r}
}

type mExact struct{ Rune rune }

var _ Matcher = (*mExact)(nil)

func (m *mExact) Match(r rune) bool { return r == m.Rune }
func (m *mExact) String() string    { return runesString([]rune{m.Rune}) }
