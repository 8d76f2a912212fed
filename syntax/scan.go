package syntax

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter, scanning the token types of the infix notation.

// Token types. Literal tokens ('(', '+', …) use their character value.
const (
	tokEOF = 0
	tokID  = 1000 + iota
	tokNum
)

// literals are the single-character tokens of the notation.
var literals = []string{"(", ")", ",", "+", "-", "*", "/", "^", "=", "<", ">"}

type token struct {
	typ    int
	lexeme string
	pos    int
}

func (t token) String() string {
	if t.typ == tokEOF {
		return "<EOF>"
	}
	return fmt.Sprintf("<%q @%d>", t.lexeme, t.pos)
}

var lexerOnce sync.Once
var lexer *lexmachine.Lexer
var lexerErr error

// sharedLexer compiles the DFA once per process.
func sharedLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`([a-zA-Z])([a-zA-Z0-9])*`), makeToken(tokID))
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNum))
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(int(lit[0])))
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = err
		}
	})
	return lexer, lexerErr
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scan tokenizes an input string completely.
func scan(input string) ([]token, error) {
	lx, err := sharedLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot scan input: %v", err)
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d = %q @%d", t.Type, string(t.Lexeme), t.StartColumn)
		tokens = append(tokens, token{
			typ:    t.Type,
			lexeme: string(t.Lexeme),
			pos:    t.StartColumn,
		})
	}
	tokens = append(tokens, token{typ: tokEOF, pos: len(input)})
	return tokens, nil
}
