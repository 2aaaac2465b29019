package automaton

import (
	"fmt"

	"github.com/nverwer/waxeye/ast"
)

// Builder assembles an Automaton one state and edge at a time.
//
// It exists for tests and for hosts that construct automata directly
// rather than compiling them from grammar source; it is not on the parse
// hot path. Edges may target a state that does not exist yet by name,
// using Label/GoTo, mirroring the forward-reference bookkeeping a
// bytecode assembler does for jump targets not yet emitted.
type Builder struct {
	typ    ast.NodeType
	mode   Mode
	states []State
	labels map[string]int
	goTo   []pendingEdge
}

type pendingEdge struct {
	fromState int
	edgeIndex int
	label     string
}

// NewBuilder starts building an automaton of the given type and mode.
func NewBuilder(typ ast.NodeType, mode Mode) *Builder {
	return &Builder{
		typ:    typ,
		mode:   mode,
		labels: make(map[string]int),
	}
}

// State allocates a new, initially edge-less, non-accepting state and
// returns its index.
func (b *Builder) State() int {
	b.states = append(b.states, State{})
	return len(b.states) - 1
}

// Label records name as an alias for state, for later resolution by GoTo.
// Panics if name is already registered.
func (b *Builder) Label(name string, state int) *Builder {
	if _, dup := b.labels[name]; dup {
		panic(fmt.Sprintf("automaton: label %q already registered", name))
	}
	b.labels[name] = state
	return b
}

// Accept marks state as an accepting state.
func (b *Builder) Accept(state int) *Builder {
	b.states[state].IsMatch = true
	return b
}

// Edge appends an edge from fromState to the already-known state index
// to, guarded by t.
func (b *Builder) Edge(fromState int, t Transition, to int, voided bool) *Builder {
	b.states[fromState].Edges = append(b.states[fromState].Edges, Edge{
		Transition: t,
		NextState:  to,
		Voided:     voided,
	})
	return b
}

// GoTo appends an edge from fromState to a state identified by a label
// that may not have been defined yet. The label must be defined by the
// time Build is called.
func (b *Builder) GoTo(fromState int, t Transition, label string, voided bool) *Builder {
	b.states[fromState].Edges = append(b.states[fromState].Edges, Edge{
		Transition: t,
		Voided:     voided,
	})
	b.goTo = append(b.goTo, pendingEdge{
		fromState: fromState,
		edgeIndex: len(b.states[fromState].Edges) - 1,
		label:     label,
	})
	return b
}

// Build resolves all pending GoTo edges and returns the finished
// Automaton. Panics if any label referenced by GoTo was never defined.
func (b *Builder) Build() Automaton {
	for _, pending := range b.goTo {
		target, ok := b.labels[pending.label]
		if !ok {
			panic(fmt.Sprintf("automaton: undefined label %q", pending.label))
		}
		b.states[pending.fromState].Edges[pending.edgeIndex].NextState = target
	}
	states := make([]State, len(b.states))
	copy(states, b.states)
	return Automaton{
		Type:   b.typ,
		Mode:   b.mode,
		States: states,
	}
}
