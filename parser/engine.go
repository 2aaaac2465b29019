package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nverwer/waxeye/ast"
	"github.com/nverwer/waxeye/automaton"
	"github.com/nverwer/waxeye/charset"
	"github.com/nverwer/waxeye/input"
)

type cacheKey struct {
	automatonIndex int
	startPos       int
}

type cacheEntry struct {
	node ast.Node
	ok   bool

	endPos      int
	endExtended any
	endLine     int
	endColumn   int
	endLastCR   bool
}

// engine is the mutable state of a single parse. It is never reused
// across parses: each call to Parser.Parse constructs a fresh one, owning
// its own input, cache, and error tracker, with no shared mutable state.
type engine struct {
	automata  []automaton.Automaton
	config    *Config
	in        input.Input
	preParsed PreParsedFunc

	cache map[cacheKey]cacheEntry
	stack []ast.NodeType
	depth int

	line   int
	column int
	lastCR bool

	errorPos  int
	errorLine int
	errorCol  int
	errorNT   ast.NodeType
}

func newEngine(automata []automaton.Automaton, startIndex int, config *Config, in input.Input, preParsed PreParsedFunc) *engine {
	return &engine{
		automata:  automata,
		config:    config,
		in:        in,
		preParsed: preParsed,
		cache:     make(map[cacheKey]cacheEntry),
		line:      1,
		column:    0,
		errorLine: 1,
		errorNT:   automata[startIndex].Type,
	}
}

func (e *engine) snapshot() (pos int, ext any, line, col int, lastCR bool) {
	return e.in.Position(), e.in.ExtendedData(), e.line, e.column, e.lastCR
}

func (e *engine) restore(pos int, ext any, line, col int, lastCR bool) {
	e.in.SetPosition(pos)
	e.in.SetExtendedData(ext)
	e.line = line
	e.column = col
	e.lastCR = lastCR
}

func (e *engine) updateLineCol(ch rune) {
	switch ch {
	case '\r':
		e.line++
		e.column = 0
		e.lastCR = true
	case '\n':
		if !e.lastCR {
			e.line++
			e.column = 0
		}
		e.lastCR = false
	default:
		e.column++
		e.lastCR = false
	}
}

func (e *engine) updateError() {
	pos := e.in.Position()
	if pos <= e.errorPos {
		return
	}
	e.errorPos = pos
	e.errorLine = e.line
	e.errorCol = e.column
	if len(e.stack) > 0 {
		e.errorNT = e.stack[len(e.stack)-1]
	}
}

func (e *engine) parseError() *ParseError {
	return &ParseError{
		Position:    e.errorPos,
		Line:        e.errorLine,
		Column:      e.errorCol,
		NonTerminal: e.config.typeName(e.errorNT),
	}
}

func (e *engine) trace(format string, args ...interface{}) {
	if e.config.Debug == nil {
		return
	}
	var buf bytes.Buffer
	for i := 0; i < e.depth; i++ {
		buf.WriteByte(' ')
		buf.WriteByte(' ')
	}
	fmt.Fprintf(&buf, format, args...)
	buf.WriteByte('\n')
	io.Copy(e.config.Debug, &buf)
}

// matchAutomaton matches the automaton at index, memoizing the result.
func (e *engine) matchAutomaton(index int) (ast.Node, bool) {
	startPos, startExt, startLine, startCol, startCR := e.snapshot()

	key := cacheKey{automatonIndex: index, startPos: startPos}
	if entry, hit := e.cache[key]; hit {
		e.restore(entry.endPos, entry.endExtended, entry.endLine, entry.endColumn, entry.endLastCR)
		return entry.node, entry.ok
	}

	a := e.automata[index]

	if e.config.MaxDepth > 0 && len(e.stack) >= e.config.MaxDepth {
		panic(&DepthExceededError{MaxDepth: e.config.MaxDepth})
	}

	e.trace("enter %s @ %d", e.config.typeName(a.Type), startPos)
	e.depth++
	e.stack = append(e.stack, a.Type)
	children, matched := e.matchState(&a, 0)
	e.stack = e.stack[:len(e.stack)-1]
	e.depth--
	e.trace("leave %s @ %d matched=%v", e.config.typeName(a.Type), startPos, matched)

	var node ast.Node
	var ok bool

	switch {
	case a.Type == e.config.PositivePredicateType:
		e.restore(startPos, startExt, startLine, startCol, startCR)
		if matched {
			node, ok = ast.Empty{NodeType: e.config.EmptyType, Position: ast.Position{Start: startPos, End: startPos}}, true
		} else {
			ok = false
		}

	case a.Type == e.config.NegativePredicateType:
		e.restore(startPos, startExt, startLine, startCol, startCR)
		if !matched {
			node, ok = ast.Empty{NodeType: e.config.EmptyType, Position: ast.Position{Start: startPos, End: startPos}}, true
		} else {
			e.updateError()
			ok = false
		}

	default:
		if !matched {
			e.updateError()
			ok = false
			break
		}
		endPos := e.in.Position()
		span := ast.Position{Start: startPos, End: endPos}
		switch a.Mode {
		case automaton.VOID:
			node = ast.Empty{NodeType: a.Type, Position: span}
		case automaton.PRUNE:
			switch len(children) {
			case 0:
				node = ast.Empty{NodeType: a.Type, Position: span}
			case 1:
				node = children[0]
			default:
				node = ast.Branch{NodeType: a.Type, NodeChildren: children, Position: span}
			}
		default: // automaton.NORMAL
			node = ast.Branch{NodeType: a.Type, NodeChildren: children, Position: span}
		}
		ok = true
	}

	endPos, endExt, endLine, endCol, endCR := e.snapshot()
	e.cache[key] = cacheEntry{
		node: node, ok: ok,
		endPos: endPos, endExtended: endExt,
		endLine: endLine, endColumn: endCol, endLastCR: endCR,
	}
	return node, ok
}

// matchState matches starting from one state in the current automaton.
func (e *engine) matchState(a *automaton.Automaton, stateIndex int) ([]ast.Node, bool) {
	state := &a.States[stateIndex]
	children, ok := e.matchEdges(a, state.Edges, 0)
	if ok {
		return children, true
	}
	if state.IsMatch {
		return []ast.Node{}, true
	}
	return nil, false
}

// matchEdges tries each edge in order, first match wins.
func (e *engine) matchEdges(a *automaton.Automaton, edges []automaton.Edge, i int) ([]ast.Node, bool) {
	if i >= len(edges) {
		return nil, false
	}
	typeName := e.config.typeName(a.Type)
	e.trace("try edge %d of %d for %s", i+1, len(edges), typeName)
	e.depth++
	children, ok := e.matchEdge(a, edges[i])
	e.depth--
	if ok {
		e.trace("edge %d of %d for %s : %d nodes", i+1, len(edges), typeName, len(children))
		return children, true
	}
	e.trace("edge %d of %d for %s : null", i+1, len(edges), typeName)
	return e.matchEdges(a, edges, i+1)
}

// matchEdge matches a single edge's transition and then its tail.
func (e *engine) matchEdge(a *automaton.Automaton, edge automaton.Edge) ([]ast.Node, bool) {
	startPos, startExt, startLine, startCol, startCR := e.snapshot()

	head, headOK := e.matchTransition(edge.Transition)
	if !headOK {
		return nil, false
	}

	tail, tailOK := e.matchState(a, edge.NextState)
	if !tailOK {
		e.restore(startPos, startExt, startLine, startCol, startCR)
		return nil, false
	}

	if edge.Voided || isEmptyNode(head) {
		return tail, true
	}
	return append([]ast.Node{head}, tail...), true
}

func isEmptyNode(n ast.Node) bool {
	_, ok := n.(ast.Empty)
	return ok
}

// matchTransition dispatches on the concrete Transition type.
func (e *engine) matchTransition(t automaton.Transition) (ast.Node, bool) {
	switch tr := t.(type) {
	case automaton.CharTransition:
		return e.matchChar(tr.Set)
	case automaton.WildcardTransition:
		return e.matchWildcard()
	case automaton.AutomatonTransition:
		e.trace("automaton: %s", e.config.typeName(e.automata[tr.Index].Type))
		return e.matchAutomaton(tr.Index)
	case automaton.PreParsedTransition:
		return e.matchPreParsed(tr.Name)
	default:
		panic(fmt.Sprintf("parser: unknown Transition type %T", t))
	}
}

// displayRune renders a rune for debug tracing, escaping newline,
// carriage return and tab so that a trace line stays on one line and
// keeps its whitespace visible.
func displayRune(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	default:
		return string(r)
	}
}

func (e *engine) matchChar(set charset.Matcher) (ast.Node, bool) {
	c := e.in.Peek()
	if c == input.EOF {
		e.trace("no char match: end of input")
		e.updateError()
		return nil, false
	}
	if !set.Match(c) {
		e.trace("no char match: '%s'", displayRune(c))
		e.updateError()
		return nil, false
	}
	startPos := e.in.Position()
	e.in.Consume()
	e.updateLineCol(c)
	e.trace("char match: '%s'", displayRune(c))
	return ast.Char{NodeType: e.config.CharType, Value: c, Position: ast.Position{Start: startPos, End: startPos + 1}}, true
}

func (e *engine) matchWildcard() (ast.Node, bool) {
	c := e.in.Peek()
	if c == input.EOF {
		e.trace("no char match: end of input")
		e.updateError()
		return nil, false
	}
	startPos := e.in.Position()
	e.in.Consume()
	e.updateLineCol(c)
	e.trace("char match: '%s'", displayRune(c))
	return ast.Char{NodeType: e.config.CharType, Value: c, Position: ast.Position{Start: startPos, End: startPos + 1}}, true
}

func (e *engine) matchPreParsed(name string) (ast.Node, bool) {
	startPos := e.in.Position()
	startExt := e.in.ExtendedData()

	if e.preParsed == nil {
		e.trace("no match: <%s>", name)
		e.updateError()
		return nil, false
	}

	skip := e.preParsed(name, e.in)
	if skip < 0 {
		e.trace("no match: <%s>", name)
		e.updateError()
		return nil, false
	}

	node := ast.PreParsed{
		NodeType:     e.config.PreParsedNTType,
		Name:         name,
		Position:     ast.Position{Start: startPos, End: startPos + skip},
		ExtendedData: startExt,
	}
	e.in.SetPosition(startPos + skip)
	e.trace("match: <%s>", name)
	return node, true
}
