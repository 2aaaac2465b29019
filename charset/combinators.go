package charset

import "strings"

// Or returns a Matcher that matches a rune iff at least one of the given
// Matchers matches it.
func Or(ms ...Matcher) Matcher {
	return &mOr{Matchers: ms}
}

type mOr struct{ Matchers []Matcher }

var _ Matcher = (*mOr)(nil)

func (m *mOr) Match(r rune) bool {
	for _, sub := range m.Matchers {
		if sub.Match(r) {
			return true
		}
	}
	return false
}

func (m *mOr) String() string { return joinMatchers("Or", m.Matchers) }

// And returns a Matcher that matches a rune iff all of the given Matchers
// match it.
func And(ms ...Matcher) Matcher {
	return &mAnd{Matchers: ms}
}

type mAnd struct{ Matchers []Matcher }

var _ Matcher = (*mAnd)(nil)

func (m *mAnd) Match(r rune) bool {
	for _, sub := range m.Matchers {
		if !sub.Match(r) {
			return false
		}
	}
	return true
}

func (m *mAnd) String() string { return joinMatchers("And", m.Matchers) }

// Not returns a Matcher that matches a rune iff the given Matcher does not.
func Not(sub Matcher) Matcher {
	return &mNot{Matcher: sub}
}

type mNot struct{ Matcher Matcher }

var _ Matcher = (*mNot)(nil)

func (m *mNot) Match(r rune) bool { return !m.Matcher.Match(r) }
func (m *mNot) String() string    { return "Not(" + m.Matcher.String() + ")" }

func joinMatchers(name string, ms []Matcher) string {
	parts := make([]string, len(ms))
	for i, sub := range ms {
		parts[i] = sub.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
