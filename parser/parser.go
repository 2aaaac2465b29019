package parser

import (
	"io"

	"github.com/nverwer/waxeye/ast"
	"github.com/nverwer/waxeye/automaton"
	"github.com/nverwer/waxeye/input"
)

// Parser holds an immutable grammar: an ordered vector of automata and a
// starting index, plus the engine configuration applied to every parse.
// A Parser is safe for concurrent use by multiple goroutines provided
// each call is given a distinct Input; the automata vector is read-only
// and never mutated after construction.
type Parser struct {
	automata   []automaton.Automaton
	startIndex int
	config     Config
}

// New constructs a Parser over the given automata vector, starting at
// startIndex, with the given Options applied in order. EOFCheck defaults
// to true; pass WithEOFCheck(false) to accept a parse that leaves input
// unconsumed.
func New(automata []automaton.Automaton, startIndex int, opts ...Option) *Parser {
	p := &Parser{
		automata:   automata,
		startIndex: startIndex,
	}
	p.config.EOFCheck = true
	for _, opt := range opts {
		opt(&p.config)
	}
	return p
}

// SetEOFCheck changes whether a successful parse requires the input to be
// exhausted. Unlike the other Options, this and SetDebug may be called
// between parses, not just at construction time.
func (p *Parser) SetEOFCheck(check bool) {
	p.config.EOFCheck = check
}

// SetDebug attaches or detaches a trace writer between parses.
func (p *Parser) SetDebug(w io.Writer) {
	p.config.Debug = w
}

// ParseResult is the outcome of a parse: exactly one of AST and Err is
// populated. Err is either a *ParseError or a *DepthExceededError.
type ParseResult struct {
	AST ast.Node
	Err error
}

// Succeeded reports whether the parse produced an AST.
func (r ParseResult) Succeeded() bool {
	return r.Err == nil
}

// Parse runs the grammar over in, using the Parser's configured default
// pre-parsed non-terminal callback, if any.
func (p *Parser) Parse(in input.Input) ParseResult {
	return p.parse(in, p.config.PreParsed)
}

// ParseWithPreParsed runs the grammar over in, using cb as the pre-parsed
// non-terminal callback for this call only, overriding (but not
// mutating) the Parser's configured default.
func (p *Parser) ParseWithPreParsed(in input.Input, cb PreParsedFunc) ParseResult {
	return p.parse(in, cb)
}

func (p *Parser) parse(in input.Input, preParsed PreParsedFunc) (result ParseResult) {
	e := newEngine(p.automata, p.startIndex, &p.config, in, preParsed)

	defer func() {
		if r := recover(); r != nil {
			if depthErr, ok := r.(*DepthExceededError); ok {
				result = ParseResult{Err: depthErr}
				return
			}
			panic(r)
		}
	}()

	node, ok := e.matchAutomaton(p.startIndex)
	if !ok {
		return ParseResult{Err: e.parseError()}
	}

	if p.config.EOFCheck && in.Peek() != input.EOF {
		return ParseResult{Err: e.parseError()}
	}

	return ParseResult{AST: node}
}
