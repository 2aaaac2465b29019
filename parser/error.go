package parser

import "fmt"

// ParseError reports where and why a parse failed: the deepest position
// reached by any attempted match, and the non-terminal that was being
// matched when that position was recorded.
type ParseError struct {
	Position    int
	Line        int
	Column      int
	NonTerminal string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"github.com/nverwer/waxeye/parser: parse error at line %d, column %d (position %d) in %s",
		e.Line, e.Column, e.Position, e.NonTerminal,
	)
}

// DepthExceededError reports that a parse was aborted because
// matchAutomaton recursion exceeded the configured MaxDepth. This
// typically means the grammar is left-recursive, or the configured limit
// is too low for the input.
type DepthExceededError struct {
	MaxDepth int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf(
		"github.com/nverwer/waxeye/parser: recursion depth exceeded %d",
		e.MaxDepth,
	)
}
