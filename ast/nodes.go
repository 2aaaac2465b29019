package ast

import (
	"fmt"
	"strings"
)

// Empty is a leaf node carrying no input text: the output of a VOID-mode
// automaton, a PRUNE-mode automaton with zero children, a positive
// predicate, or a negative predicate whose inner match failed.
type Empty struct {
	NodeType NodeType
	Position Position
}

var _ Node = Empty{}

func (n Empty) Type() NodeType   { return n.NodeType }
func (n Empty) Span() Position   { return n.Position }
func (n Empty) Children() []Node { return nil }
func (n Empty) String() string   { return fmt.Sprintf("Empty(%d)@%s", n.NodeType, n.Position) }

// Char is a leaf node produced by a Char or Wildcard transition: exactly
// one input character.
type Char struct {
	NodeType NodeType
	Value    rune
	Position Position
}

var _ Node = Char{}

func (n Char) Type() NodeType   { return n.NodeType }
func (n Char) Span() Position   { return n.Position }
func (n Char) Children() []Node { return nil }
func (n Char) String() string {
	return fmt.Sprintf("Char(%d, %q)@%s", n.NodeType, n.Value, n.Position)
}

// Branch is an interior node produced by a NORMAL-mode automaton, or by a
// PRUNE-mode automaton with two or more surviving children.
type Branch struct {
	NodeType     NodeType
	NodeChildren []Node
	Position     Position
}

var _ Node = Branch{}

func (n Branch) Type() NodeType   { return n.NodeType }
func (n Branch) Span() Position   { return n.Position }
func (n Branch) Children() []Node { return n.NodeChildren }
func (n Branch) String() string {
	parts := make([]string, len(n.NodeChildren))
	for i, c := range n.NodeChildren {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Branch(%d, [%s])@%s", n.NodeType, strings.Join(parts, ", "), n.Position)
}

// PreParsed is a leaf node produced by a PreParsedNonTerminal transition.
// ExtendedData carries whatever opaque payload the input held at the time
// the host callback reported a match; it is captured before the input's
// position is advanced past the matched span.
type PreParsed struct {
	NodeType     NodeType
	Name         string
	Position     Position
	ExtendedData any
}

var _ Node = PreParsed{}

func (n PreParsed) Type() NodeType   { return n.NodeType }
func (n PreParsed) Span() Position   { return n.Position }
func (n PreParsed) Children() []Node { return nil }
func (n PreParsed) String() string {
	return fmt.Sprintf("PreParsed(%d, %q)@%s", n.NodeType, n.Name, n.Position)
}
