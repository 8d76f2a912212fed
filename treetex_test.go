package treetex

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyNodes(t *testing.T) {
	nodes := []Expr{
		Lit(7),
		Id("x"),
		Apply("sqrt", Id("x")),
	}
	kinds := []NodeType{LiteralType, IdentifierType, CallType}
	for i, node := range nodes {
		kind, err := Classify(node)
		if err != nil {
			t.Errorf("node #%d: unexpected classification error: %v", i, err)
		}
		if kind != kinds[i] {
			t.Errorf("node #%d: expected kind %s, got %s", i, kinds[i], kind)
		}
	}
}

type alienNode struct{}

func (alienNode) Type() NodeType { return Undefined }

func TestClassifyRejectsAlienShapes(t *testing.T) {
	if _, err := Classify(alienNode{}); err == nil {
		t.Error("expected classification of alien node shape to fail, didn't")
	}
	if _, err := Classify(nil); err == nil {
		t.Error("expected classification of nil node to fail, didn't")
	}
}

func TestLiteralText(t *testing.T) {
	d, _ := decimal.NewFromString("3.1416")
	literals := []Literal{
		Lit("hello"),
		Lit(d),
		Lit(42),
		Lit(0.5),
	}
	expected := []string{"hello", "3.1416", "42", "0.5"}
	for i, l := range literals {
		if l.Text() != expected[i] {
			t.Errorf("literal #%d: expected %q, got %q", i, expected[i], l.Text())
		}
	}
}

func TestFreeIdentifiers(t *testing.T) {
	// x + foo(y, x, 1), head names must not count as identifiers
	tree := Apply("+", Id("x"), Apply("foo", Id("y"), Id("x"), Lit(1)))
	names, err := FreeIdentifiers(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := names.Values()
	if len(values) != 2 {
		t.Fatalf("expected 2 free identifiers, got %d: %v", len(values), values)
	}
	if values[0] != "x" || values[1] != "y" {
		t.Errorf("expected first-encountered order [x y], got %v", values)
	}
	if names.Contains("+") || names.Contains("foo") {
		t.Error("call heads leaked into the free-identifier set")
	}
}

func TestCallHeads(t *testing.T) {
	tree := Apply("+", Id("pi"), Apply("foo", Apply("sqrt", Id("a"))))
	heads, err := CallHeads(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := heads.Values()
	if len(values) != 3 {
		t.Fatalf("expected 3 call heads, got %d: %v", len(values), values)
	}
	if values[0] != "+" || values[1] != "foo" || values[2] != "sqrt" {
		t.Errorf("expected first-encountered order [+ foo sqrt], got %v", values)
	}
	if heads.Contains("pi") || heads.Contains("a") {
		t.Error("identifiers leaked into the call-head set")
	}
}

func TestCollectorsPropagateClassificationFailure(t *testing.T) {
	tree := Apply("f", alienNode{})
	if _, err := FreeIdentifiers(tree); err == nil {
		t.Error("expected FreeIdentifiers to fail on alien node, didn't")
	}
	if _, err := CallHeads(tree); err == nil {
		t.Error("expected CallHeads to fail on alien node, didn't")
	}
}
