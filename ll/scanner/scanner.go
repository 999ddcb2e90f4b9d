/*
Package scanner defines an interface for token sources to be used with LL(1)
parsers of package ll1.

Three implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', (2) fixed token sequences, useful for testing and for
pre-tokenized input, and (3) an adapter for lexmachine, living in
sub-package `lexmach`.

Every token source has to follow a simple contract: it moves forward only,
signals the end of input with a token for symbol predictive.EOS (and keeps
doing so on every subsequent call), and reports input it cannot tokenize
with a token for symbol predictive.ErrorSymbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	"github.com/Egoushka/PredictiveAnalizator"
)

// tracer traces with key 'predictive.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predictive.scanner")
}

// Symbols produced by the Go tokenizer.
const (
	Ident     = "ident"
	Int       = "int"
	Float     = "float"
	Char      = "char"
	String    = "string"
	RawString = "rawstring"
	Comment   = "comment"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() predictive.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	symbol string
	lexeme string
	Val    interface{}
	span   predictive.Span
	line   int
	column int
}

var _ predictive.Token = DefaultToken{}

// MakeDefaultToken creates a token for symbol sym, located at line:column.
func MakeDefaultToken(sym string, lexeme string, span predictive.Span, line, column int) DefaultToken {
	return DefaultToken{
		symbol: sym,
		lexeme: lexeme,
		span:   span,
		line:   line,
		column: column,
	}
}

// EOSToken creates an end-of-input token for position pos.
func EOSToken(pos uint64, line, column int) DefaultToken {
	return MakeDefaultToken(predictive.EOS, "", predictive.Span{pos, pos}, line, column)
}

func (t DefaultToken) Symbol() string {
	return t.symbol
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() predictive.Span {
	return t.span
}

func (t DefaultToken) Line() int {
	return t.line
}

func (t DefaultToken) Column() int {
	return t.column
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.symbol, t.lexeme, t.line, t.column)
}

// --- Go tokenizer ----------------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	errHandler   func(error)       // error handler
	scanErr      string            // error message for the current token
	unifyStrings bool              // convert raw strings and single chars to strings
	rename       map[string]string // produced symbol → grammar terminal
	done         bool              // EOS has been delivered
	eos          DefaultToken
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go
// language. Identifiers, numbers, strings and comments are delivered as
// symbols Ident, Int, Float, String, RawString, Char and Comment. Any other
// rune is delivered as a symbol of its own, e.g. "+" or "(". Comments are
// skipped by default.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.errHandler = LogError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.scanErr = msg
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.errHandler = LogError
		return
	}
	t.errHandler = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() predictive.Token {
	if t.done {
		return t.eos
	}
	t.scanErr = ""
	r := t.Scan()
	if r == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		pos := t.Pos()
		t.done = true
		t.eos = EOSToken(uint64(pos.Offset), pos.Line, pos.Column)
		return t.eos
	}
	sym := t.symbolFor(r)
	if t.scanErr != "" {
		t.errHandler(fmt.Errorf("%s: %s", t.Position, t.scanErr))
		sym = predictive.ErrorSymbol
	}
	return MakeDefaultToken(sym, t.TokenText(),
		predictive.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
		t.Position.Line, t.Position.Column)
}

func (t *DefaultTokenizer) symbolFor(r rune) string {
	var sym string
	switch r {
	case scanner.Ident:
		sym = Ident
	case scanner.Int:
		sym = Int
	case scanner.Float:
		sym = Float
	case scanner.String:
		sym = String
	case scanner.RawString:
		sym = RawString
	case scanner.Char:
		sym = Char
	case scanner.Comment:
		sym = Comment
	default:
		sym = string(r)
	}
	if t.unifyStrings && (sym == RawString || sym == Char) {
		sym = String
	}
	if s, ok := t.rename[sym]; ok {
		sym = s
	}
	return sym
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Rename maps symbols produced by the tokenizer to terminals of a grammar,
// e.g. Int to "number".
func Rename(m map[string]string) Option {
	return func(t *DefaultTokenizer) {
		if t.rename == nil {
			t.rename = make(map[string]string, len(m))
		}
		for k, v := range m {
			t.rename[k] = v
		}
	}
}
