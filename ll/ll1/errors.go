package ll1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Egoushka/PredictiveAnalizator"
)

// ErrLexical is wrapped by syntax errors caused by input the scanner was
// unable to tokenize.
var ErrLexical = errors.New("lexical error")

// SyntaxError is returned if the input does not conform to the grammar.
type SyntaxError struct {
	NonTerminal string   // non-terminal being derived, if any
	Expected    []string // terminals acceptable at this point
	Actual      string   // symbol of the lookahead token
	Lexeme      string   // lexeme of the lookahead token
	Line        int
	Column      int
	Position    uint64
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at %d:%d: unexpected %s", e.Line, e.Column, e.Actual)
	if e.Lexeme != "" {
		fmt.Fprintf(&b, " %q", e.Lexeme)
	}
	if e.NonTerminal != "" {
		fmt.Fprintf(&b, " in %s", e.NonTerminal)
	}
	fmt.Fprintf(&b, ", expected one of {%s}", strings.Join(e.Expected, ", "))
	return b.String()
}

// Unwrap returns ErrLexical if the lookahead has been an error token.
func (e *SyntaxError) Unwrap() error {
	if e.Actual == predictive.ErrorSymbol {
		return ErrLexical
	}
	return nil
}
