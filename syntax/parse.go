package syntax

import (
	"fmt"

	"github.com/npillmayer/treetex"
	"github.com/shopspring/decimal"
)

// Recursive-descent parser over the scanned tokens. Operators become call
// nodes, so the translator needs no special casing for them.

// Parse parses an infix expression into an expression tree.
func Parse(input string) (treetex.Expr, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	if p.peek().typ != tokEOF {
		return nil, fmt.Errorf("unexpected input after expression: %v", p.peek())
	}
	tracer().Debugf("parsed %q as %v", input, expr)
	return expr, nil
}

type parser struct {
	tokens []token
	cursor int
}

func (p *parser) peek() token {
	return p.tokens[p.cursor]
}

func (p *parser) advance() token {
	t := p.tokens[p.cursor]
	if t.typ != tokEOF {
		p.cursor++
	}
	return t
}

func (p *parser) expect(typ int, what string) (token, error) {
	t := p.peek()
	if t.typ != typ {
		return t, fmt.Errorf("expected %s, got %v", what, t)
	}
	return p.advance(), nil
}

// comparison ➞ sum (('='|'<'|'>') sum)?
func (p *parser) comparison() (treetex.Expr, error) {
	left, err := p.sum()
	if err != nil {
		return nil, err
	}
	switch p.peek().typ {
	case '=', '<', '>':
		op := p.advance()
		right, err := p.sum()
		if err != nil {
			return nil, err
		}
		return treetex.Apply(op.lexeme, left, right), nil
	}
	return left, nil
}

// sum ➞ term (('+'|'-') term)*
func (p *parser) sum() (treetex.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == '+' || p.peek().typ == '-' {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = treetex.Apply(op.lexeme, left, right)
	}
	return left, nil
}

// term ➞ power (('*'|'/') power)*
//
// '*' maps to the known infix renderer "times", '/' to the two-slot
// fraction template.
func (p *parser) term() (treetex.Expr, error) {
	left, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == '*' || p.peek().typ == '/' {
		op := p.advance()
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		if op.typ == '*' {
			left = treetex.Apply("times", left, right)
		} else {
			left = treetex.Apply("frac", left, right)
		}
	}
	return left, nil
}

// power ➞ unary ('^' power)?   (right-associative)
func (p *parser) power() (treetex.Expr, error) {
	base, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.peek().typ == '^' {
		p.advance()
		exponent, err := p.power()
		if err != nil {
			return nil, err
		}
		return treetex.Apply("pow", base, exponent), nil
	}
	return base, nil
}

// unary ➞ '-' unary | atom
func (p *parser) unary() (treetex.Expr, error) {
	if p.peek().typ == '-' {
		p.advance()
		arg, err := p.unary()
		if err != nil {
			return nil, err
		}
		return treetex.Apply("neg", arg), nil
	}
	return p.atom()
}

// atom ➞ NUM | ID | ID '(' args ')' | '(' comparison ')'
func (p *parser) atom() (treetex.Expr, error) {
	switch t := p.peek(); t.typ {
	case tokNum:
		p.advance()
		d, err := decimal.NewFromString(t.lexeme)
		if err != nil {
			return nil, fmt.Errorf("cannot read number %v: %v", t, err)
		}
		return treetex.Lit(d), nil
	case tokID:
		p.advance()
		if p.peek().typ != '(' {
			return treetex.Id(t.lexeme), nil
		}
		p.advance()
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(')', "')'"); err != nil {
			return nil, err
		}
		return treetex.Apply(t.lexeme, args...), nil
	case '(':
		p.advance()
		expr, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(')', "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, fmt.Errorf("expected an expression, got %v", p.peek())
}

// arguments ➞ (comparison (',' comparison)*)?
func (p *parser) arguments() ([]treetex.Expr, error) {
	var args []treetex.Expr
	if p.peek().typ == ')' {
		return args, nil
	}
	for {
		arg, err := p.comparison()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().typ != ',' {
			return args, nil
		}
		p.advance()
	}
}
