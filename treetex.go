package treetex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// --- A general purpose interface for expression-tree nodes ----------------

// NodeType is the category of an expression-tree node. The set of categories
// is closed: every node is a literal, an identifier or a call.
type NodeType int8

// Node types for the three kinds of expression nodes.
const (
	Undefined NodeType = iota
	LiteralType
	IdentifierType
	CallType
)

func (t NodeType) String() string {
	switch t {
	case LiteralType:
		return "literal"
	case IdentifierType:
		return "identifier"
	case CallType:
		return "call"
	}
	return "undefined"
}

// Expr is a node of an expression tree. Trees are supplied by clients,
// usually produced by a parser (see package syntax for an example). The
// translation engine only ever traverses them and holds no references to a
// tree after a translation returns.
//
// An example would be the tree for "pi + sqrt(x)":
//
//    Apply("+", Id("pi"), Apply("sqrt", Id("x")))
//
type Expr interface {
	Type() NodeType
}

// Classify returns the node type of an expression node. It is total over
// the three node kinds; any other shape (including a nil node or a foreign
// Expr implementation) is a fatal classification error.
func Classify(node Expr) (NodeType, error) {
	switch node.(type) {
	case Literal:
		return LiteralType, nil
	case Identifier:
		return IdentifierType, nil
	case Call:
		return CallType, nil
	}
	return Undefined, fmt.Errorf("cannot classify expression node of shape %T", node)
}

// --- Literals --------------------------------------------------------------

// Literal is a leaf node carrying a constant value. Values are opaque to the
// tree; Text knows how to render the usual suspects.
type Literal struct {
	Value interface{}
}

// Lit wraps a constant value into a literal node.
func Lit(value interface{}) Literal {
	return Literal{Value: value}
}

// Type returns LiteralType.
func (l Literal) Type() NodeType {
	return LiteralType
}

// Text returns the textual form of the literal's value.
func (l Literal) Text() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", l.Value)
}

func (l Literal) String() string {
	return l.Text()
}

// --- Identifiers -----------------------------------------------------------

// Identifier is a leaf node referencing a name, to be resolved against the
// symbol tables of a translation.
type Identifier struct {
	Name string
}

// Id creates an identifier node.
func Id(name string) Identifier {
	return Identifier{Name: name}
}

// Type returns IdentifierType.
func (id Identifier) Type() NodeType {
	return IdentifierType
}

func (id Identifier) String() string {
	return id.Name
}

// --- Calls -----------------------------------------------------------------

// Call is an inner node: a head name applied to an ordered sequence of
// argument nodes. Operators are calls, too: "a + b" is Apply("+", a, b).
type Call struct {
	Head string
	Args []Expr
}

// Apply creates a call node for a head name and its arguments.
func Apply(head string, args ...Expr) Call {
	return Call{Head: head, Args: args}
}

// Type returns CallType.
func (c Call) Type() NodeType {
	return CallType
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Head)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", arg)
	}
	b.WriteString(")")
	return b.String()
}
