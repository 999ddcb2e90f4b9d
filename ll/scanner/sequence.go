package scanner

import (
	"github.com/Egoushka/PredictiveAnalizator"
)

// SequenceTokenizer delivers a fixed sequence of tokens. After the sequence
// is exhausted, it delivers EOS tokens.
type SequenceTokenizer struct {
	tokens     []predictive.Token
	pos        int
	errHandler func(error)
	eos        predictive.Token
}

var _ Tokenizer = (*SequenceTokenizer)(nil)

// Sequence creates a tokenizer for a fixed sequence of tokens. Tokens
// following an EOS token in the sequence are never delivered.
func Sequence(tokens ...predictive.Token) *SequenceTokenizer {
	seq := &SequenceTokenizer{
		tokens:     tokens,
		errHandler: LogError,
	}
	var end uint64
	line, col := 1, 1
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		end = last.Span().To()
		line = last.Line()
		col = last.Column() + len(last.Lexeme())
	}
	seq.eos = EOSToken(end, line, col)
	return seq
}

// Symbols creates a tokenizer for a sequence of symbols, using each symbol as
// its own lexeme. Symbols are located as if written on a single line,
// separated by a blank.
//
//    Symbols("int", "+", "int")   // int + int
//
func Symbols(syms ...string) *SequenceTokenizer {
	tokens := make([]predictive.Token, 0, len(syms))
	var pos uint64
	for _, sym := range syms {
		span := predictive.Span{pos, pos + uint64(len(sym))}
		tokens = append(tokens, MakeDefaultToken(sym, sym, span, 1, int(pos)+1))
		pos = span.To() + 1
	}
	return Sequence(tokens...)
}

// SetErrorHandler is part of the Tokenizer interface. Fixed sequences never
// produce errors themselves.
func (seq *SequenceTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = LogError
	}
	seq.errHandler = h
}

// NextToken is part of the Tokenizer interface.
func (seq *SequenceTokenizer) NextToken() predictive.Token {
	if seq.pos >= len(seq.tokens) {
		return seq.eos
	}
	tok := seq.tokens[seq.pos]
	seq.pos++
	if tok.Symbol() == predictive.EOS {
		seq.pos = len(seq.tokens)
		seq.eos = tok
	}
	return tok
}
