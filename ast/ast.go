// Package ast defines the AST node types produced by a parse.
//
// Java's IAST<E> used a nullable reference to double as a "no match"
// sentinel; that idiom does not translate. Throughout this module, a failed
// match is reported as a (Node, false) pair rather than a nil Node.
package ast

import "fmt"

// NodeType tags an AST node with the grammar's non-terminal (or sentinel)
// it was produced from. The zero value is not a reserved sentinel; callers
// supply their own type constants, typically starting at 0.
type NodeType int32

// Position is the half-open-at-construction span [Start, End) an AST node
// covers in the input, in character positions.
type Position struct {
	Start int
	End   int
}

func (p Position) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}

// Node is an AST node.
type Node interface {
	// Type returns the node's type tag.
	Type() NodeType

	// Span returns the node's position in the input.
	Span() Position

	// Children returns the node's children, in left-to-right order. Leaf
	// nodes (Empty, Char, PreParsed) return nil.
	Children() []Node

	// String returns a debug representation, not used for anything
	// semantic.
	String() string
}
