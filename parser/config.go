package parser

import (
	"fmt"
	"io"

	"github.com/nverwer/waxeye/ast"
	"github.com/nverwer/waxeye/input"
)

// PreParsedFunc is the host callback consulted by a PreParsedNonTerminal
// transition. It must not mutate in's position as a side effect visible
// on return. A return value n >= 0 means the non-terminal named name
// matched n characters starting at in's current position; any negative
// value means no match.
type PreParsedFunc func(name string, in input.Input) int

// Config holds the sentinel type tags and behavioral knobs a Parser needs.
// Construct one with New, which applies a set of Options.
type Config struct {
	// EmptyType, CharType, PreParsedNTType, PositivePredicateType, and
	// NegativePredicateType are the five designated sentinel type tags
	// described below. Automata whose own Type equals
	// PositivePredicateType or NegativePredicateType are interpreted as
	// predicates regardless of their structure.
	EmptyType              ast.NodeType
	CharType               ast.NodeType
	PreParsedNTType        ast.NodeType
	PositivePredicateType  ast.NodeType
	NegativePredicateType  ast.NodeType

	// EOFCheck, when true, requires the input to be fully consumed for
	// a parse to succeed.
	EOFCheck bool

	// MaxDepth bounds matchAutomaton recursion depth. Zero means
	// unlimited.
	MaxDepth int

	// Debug, if non-nil, receives a line-oriented trace of engine
	// activity. The format is not normative.
	Debug io.Writer

	// TypeNames resolves a NodeType to a human-readable name for error
	// messages and debug tracing. A type with no entry renders as
	// "NodeType(<n>)".
	TypeNames map[ast.NodeType]string

	// PreParsed is the default pre-parsed non-terminal callback. It may
	// be overridden per call with ParseWithPreParsed. A nil callback
	// causes any PreParsedNonTerminal transition to fail.
	PreParsed PreParsedFunc
}

// Option configures a Config. See New.
type Option func(*Config)

// WithEmptyType sets the sentinel type tag used for Empty nodes.
func WithEmptyType(t ast.NodeType) Option {
	return func(c *Config) { c.EmptyType = t }
}

// WithCharType sets the sentinel type tag used for Char leaves.
func WithCharType(t ast.NodeType) Option {
	return func(c *Config) { c.CharType = t }
}

// WithPreParsedNTType sets the sentinel type tag used for PreParsed
// leaves.
func WithPreParsedNTType(t ast.NodeType) Option {
	return func(c *Config) { c.PreParsedNTType = t }
}

// WithPredicateTypes sets the two sentinel type tags that mark an
// automaton as a positive or negative syntactic predicate.
func WithPredicateTypes(positive, negative ast.NodeType) Option {
	return func(c *Config) {
		c.PositivePredicateType = positive
		c.NegativePredicateType = negative
	}
}

// WithEOFCheck sets whether a successful parse additionally requires the
// input to be exhausted. Default true; New applies this default before
// any Option runs, so WithEOFCheck is only needed to turn the check off.
func WithEOFCheck(check bool) Option {
	return func(c *Config) { c.EOFCheck = check }
}

// WithMaxDepth bounds matchAutomaton recursion depth. A parse that would
// exceed it fails with a DepthExceededError. Zero (the default) means
// unlimited.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithDebug attaches a trace writer. Default nil (no tracing).
func WithDebug(w io.Writer) Option {
	return func(c *Config) { c.Debug = w }
}

// WithTypeNames supplies the NodeType-to-name table used in error
// messages and debug tracing.
func WithTypeNames(names map[ast.NodeType]string) Option {
	return func(c *Config) { c.TypeNames = names }
}

// WithPreParsedCallback sets the default pre-parsed non-terminal
// callback.
func WithPreParsedCallback(fn PreParsedFunc) Option {
	return func(c *Config) { c.PreParsed = fn }
}

func (c *Config) typeName(t ast.NodeType) string {
	if name, ok := c.TypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NodeType(%d)", t)
}
