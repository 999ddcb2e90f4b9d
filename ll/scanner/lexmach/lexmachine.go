package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/Egoushka/PredictiveAnalizator"
	"github.com/Egoushka/PredictiveAnalizator/ll/scanner"
)

// tracer traces with key 'predictive.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predictive.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Literals
// and keywords are delivered as terminals of the same name.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{
		scanner:    s,
		input:      []byte(input),
		errHandler: scanner.LogError,
		line:       1,
		column:     1,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner    *lexmachine.Scanner
	input      []byte
	errHandler func(error)
	line       int // location behind the last token
	column     int
	eos        predictive.Token
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.errHandler = scanner.LogError
		return
	}
	lms.errHandler = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() predictive.Token {
	if lms.eos != nil {
		return lms.eos
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		return lms.errorToken(err)
	}
	if eof {
		tracer().Debugf("LMScanner reached end of input")
		lms.eos = scanner.EOSToken(uint64(len(lms.input)), lms.line, lms.column)
		return lms.eos
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	sym, ok := token.Value.(string)
	if !ok {
		sym = fmt.Sprintf("%v", token.Value)
	}
	lms.line, lms.column = token.EndLine, token.EndColumn+1
	t := scanner.MakeDefaultToken(
		sym,
		string(token.Lexeme),
		predictive.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		token.StartLine,
		token.StartColumn,
	)
	return t
}

// errorToken reports a scanner error and wraps the offending input into a
// token for predictive.ErrorSymbol. The scanner is moved behind the failure.
func (lms *LMScanner) errorToken(err error) predictive.Token {
	lms.errHandler(err)
	ui, is := err.(*machines.UnconsumedInput)
	if !is {
		lms.eos = scanner.EOSToken(uint64(len(lms.input)), lms.line, lms.column)
		return scanner.MakeDefaultToken(predictive.ErrorSymbol, "",
			predictive.Span{uint64(lms.scanner.TC), uint64(lms.scanner.TC)}, lms.line, lms.column)
	}
	from, to := ui.StartTC, ui.FailTC
	if to <= from {
		to = from + 1
	}
	if to > len(lms.input) {
		to = len(lms.input)
	}
	lms.scanner.TC = to
	lms.line, lms.column = ui.FailLine, ui.FailColumn+1
	return scanner.MakeDefaultToken(
		predictive.ErrorSymbol,
		string(lms.input[from:to]),
		predictive.Span{uint64(from), uint64(to)},
		ui.StartLine,
		ui.StartColumn,
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// for terminal name.
func MakeToken(name string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, name, m), nil
	}
}
