package ast

import "testing"

const (
	typeDigit NodeType = iota
	typeNum
)

func TestEmpty_Children(t *testing.T) {
	n := Empty{NodeType: typeDigit, Position: Position{1, 1}}
	if got := n.Children(); len(got) != 0 {
		t.Errorf("expected no children, got %v", got)
	}
	if n.Type() != typeDigit {
		t.Errorf("expected type %d, got %d", typeDigit, n.Type())
	}
}

func TestChar_Span(t *testing.T) {
	n := Char{NodeType: typeDigit, Value: '7', Position: Position{3, 4}}
	if n.Span() != (Position{3, 4}) {
		t.Errorf("expected span 3..4, got %s", n.Span())
	}
	if n.Value != '7' {
		t.Errorf("expected rune '7', got %q", n.Value)
	}
}

func TestBranch_Children(t *testing.T) {
	c1 := Char{NodeType: typeDigit, Value: '1', Position: Position{0, 1}}
	c2 := Char{NodeType: typeDigit, Value: '2', Position: Position{1, 2}}
	n := Branch{NodeType: typeNum, NodeChildren: []Node{c1, c2}, Position: Position{0, 2}}

	kids := n.Children()
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	if kids[0] != Node(c1) || kids[1] != Node(c2) {
		t.Errorf("children did not round-trip: %v", kids)
	}
}

func TestPreParsed_ExtendedData(t *testing.T) {
	n := PreParsed{
		NodeType:     typeDigit,
		Name:         "comment",
		Position:     Position{5, 12},
		ExtendedData: 42,
	}
	if n.ExtendedData != 42 {
		t.Errorf("expected extended data 42, got %v", n.ExtendedData)
	}
	if len(n.Children()) != 0 {
		t.Errorf("expected leaf node, got children")
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{Start: 2, End: 9}
	if got, want := p.String(), "2..9"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
