package automaton

import (
	"fmt"

	"github.com/nverwer/waxeye/charset"
)

// Transition guards an Edge. The engine dispatches on the concrete type via
// a type switch (see parser.matchTransition, called from matchEdge), not a
// visitor: there are exactly four variants and they are not expected to
// grow.
type Transition interface {
	// String returns a human-readable representation, for debugging.
	String() string

	// isTransition is unexported so Transition cannot be implemented
	// outside this package.
	isTransition()
}

// CharTransition matches a single input character against a set.
type CharTransition struct {
	Set charset.Matcher
}

func (CharTransition) isTransition() {}
func (t CharTransition) String() string {
	return fmt.Sprintf("Char(%s)", t.Set)
}

// WildcardTransition matches any single character except EOF.
type WildcardTransition struct{}

func (WildcardTransition) isTransition() {}
func (WildcardTransition) String() string { return "Wildcard" }

// AutomatonTransition recursively invokes another automaton by index into
// the engine's automata vector.
type AutomatonTransition struct {
	Index int
}

func (AutomatonTransition) isTransition() {}
func (t AutomatonTransition) String() string {
	return fmt.Sprintf("Automaton(%d)", t.Index)
}

// PreParsedTransition consults the host's pre-parsed non-terminal
// callback, identifying the non-terminal by name.
type PreParsedTransition struct {
	Name string
}

func (PreParsedTransition) isTransition() {}
func (t PreParsedTransition) String() string {
	return fmt.Sprintf("PreParsedNonTerminal(%q)", t.Name)
}
