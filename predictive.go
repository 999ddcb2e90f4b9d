package predictive

import "fmt"

// Reserved terminal names. Every grammar implicitly contains both of them as
// terminals, appended after all terminals derived from its rules.
const (
	EOS         = "#EOS"   // end of the token stream
	ErrorSymbol = "#ERROR" // input which could not be tokenized
)

// IsSentinel is true for the reserved terminals EOS and ErrorSymbol.
func IsSentinel(sym string) bool {
	return sym == EOS || sym == ErrorSymbol
}

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals of a grammar.
//
// An example would be a token for an integer:
//
//    Symbol = "int"        // name of the terminal this token matches
//    Lexeme = "3141"       // lexeme how it appeared in the input stream
//    Value  = 3141         // may be set by the scanner, may be nil
//    Span   = 67…71        // occured from position 67 in the input stream
//    Line   = 3            // 1-based
//    Column = 12           // 1-based
//
// A scanner signals the end of input with a token for symbol EOS, and input
// it is unable to tokenize with a token for symbol ErrorSymbol.
type Token interface {
	Symbol() string
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
	Column() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
