// Package automaton implements the finite-state representation of a single
// grammar rule: a graph of States connected by Edges, each Edge guarded by
// a Transition. A full grammar is an ordered vector of Automaton values,
// referencing each other by index (see package parser).
package automaton

import "github.com/nverwer/waxeye/ast"

// Mode controls how matchAutomaton turns a state's matched children into
// an AST node once the automaton as a whole succeeds.
type Mode int

const (
	// NORMAL always wraps the children in a Branch.
	NORMAL Mode = iota

	// PRUNE lifts a lone child, drops to Empty on zero children, and
	// otherwise wraps in a Branch like NORMAL.
	PRUNE

	// VOID always produces Empty, discarding whatever children matched.
	VOID
)

func (m Mode) String() string {
	switch m {
	case NORMAL:
		return "NORMAL"
	case PRUNE:
		return "PRUNE"
	case VOID:
		return "VOID"
	default:
		return "Mode(?)"
	}
}

// Automaton is the compiled form of one grammar rule.
//
// Automata whose Type equals the engine's configured positive- or
// negative-predicate sentinel are interpreted as predicates regardless of
// their Mode or States; Mode only matters for ordinary non-terminals.
type Automaton struct {
	Type   ast.NodeType
	Mode   Mode
	States []State
}

// State is one node of the automaton's graph. Edges are tried in order;
// the first one that matches wins (ordered choice).
type State struct {
	Edges   []Edge
	IsMatch bool
}

// Edge connects two states, guarded by a Transition.
type Edge struct {
	Transition Transition
	NextState  int
	Voided     bool
}
