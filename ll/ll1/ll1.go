/*
Package ll1 provides a table-driven LL(1) parser. Clients have to use the
tools of package ll to prepare the parse table. The parser utilizes this
table to create a left derivation for a given input, provided through a
scanner interface.

This parser is intended for small to moderate grammars, e.g. for configuration
input or small domain-specific languages. Grammars have to be LL(1): free of
left recursion and left-factored. Package ll will reject other grammars when
constructing the parse table.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := ll.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("ident").End()  // Var  --> Sign ident
	b.LHS("Sign").T("+").End()               // Sign --> +
	b.LHS("Sign").T("-").End()               // Sign --> -
	b.LHS("Sign").Epsilon()                  // Sign -->
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table construction.

	table, err := ll.Compile(g)
	if err != nil { ... }  // cannot use an LL(1) parser

Finally parse some input:

	tokens := scanner.GoTokenizer("input", strings.NewReader("+a"))
	p, err := ll1.NewParser(table, tokens, "")
	tree, err := p.ParseTree()

Alternatively, clients read the parse events one at a time:

	for p.Read() {
		switch p.NodeType() {
		case ll1.EnterNonTerminal: …
		case ll1.EmptyNonTerminal: …
		case ll1.Terminal:         …
		}
	}
	if err := p.Err(); err != nil { … }

Both modes drive the same automaton and see the same sequence of nodes.
A parser may be used for a single parse only, as the token source is
consumed by it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ll1

import (
	"context"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/Egoushka/PredictiveAnalizator"
	"github.com/Egoushka/PredictiveAnalizator/ll"
	"github.com/Egoushka/PredictiveAnalizator/ll/ptree"
	"github.com/Egoushka/PredictiveAnalizator/ll/scanner"
)

// tracer traces with key 'predictive.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predictive.ll")
}

// NodeType is the kind of a parse event.
type NodeType int

// Kinds of parse events. A non-terminal is either entered, i.e. expanded with
// a rule which has a non-empty right side, or it is expanded with an epsilon
// rule and therefore empty.
const (
	Initial          NodeType = iota // no event read yet
	EnterNonTerminal                 // non-terminal expanded with a non-epsilon rule
	EmptyNonTerminal                 // non-terminal expanded with an epsilon rule
	Terminal                         // terminal matched with the lookahead token
	EndOfParse                       // parse is finished or has failed
)

func (nt NodeType) String() string {
	switch nt {
	case Initial:
		return "Initial"
	case EnterNonTerminal:
		return "EnterNonTerminal"
	case EmptyNonTerminal:
		return "EmptyNonTerminal"
	case Terminal:
		return "Terminal"
	case EndOfParse:
		return "EndOfParse"
	}
	return fmt.Sprintf("NodeType(%d)", int(nt))
}

// Parser is an LL(1)-parser type. Create and initialize one with ll1.NewParser(...)
type Parser struct {
	table      *ll.ParseTable
	tokens     scanner.Tokenizer
	start      string
	stack      *arraystack.Stack // of stackitem
	la         predictive.Token  // lookahead
	started    bool
	done       bool
	err        error
	current    event
	requireEOS bool
}

// We store pending symbols on the parse stack, together with the parse tree
// node their node will be linked to (if building a tree).
type stackitem struct {
	symbol    string
	parentSym string      // non-terminal this symbol has been pushed for
	parent    *ptree.Node // tree mode only
}

// event is the result of a single step of the automaton.
type event struct {
	kind   NodeType
	symbol string
	token  predictive.Token // lookahead at the time of the step
	rule   *ll.Rule         // rule used for a non-terminal
	node   *ptree.Node      // tree mode only
}

// Option configures a parser.
type Option func(p *Parser)

// RequireEOS sets or clears a check for the end of input. If set (the
// default), input following a complete derivation of the start symbol is a
// syntax error. Otherwise the parser stops after the start symbol has been
// derived, leaving the remaining input unread.
func RequireEOS(b bool) Option {
	return func(p *Parser) {
		p.requireEOS = b
	}
}

// NewParser creates an LL(1) parser for a parse table, reading tokens from a
// tokenizer. The parse will derive non-terminal start, or the start symbol
// of the table's grammar if start is empty.
func NewParser(table *ll.ParseTable, tokens scanner.Tokenizer, start string, opts ...Option) (*Parser, error) {
	if table == nil || tokens == nil {
		return nil, errors.New("LL(1)-parser needs a parse table and a tokenizer")
	}
	if start == "" {
		start = table.Start()
	}
	if !table.IsNonTerminal(start) {
		return nil, fmt.Errorf("cannot start parse with %q: not a non-terminal of grammar %s",
			start, table.Grammar().Name)
	}
	p := &Parser{
		table:      table,
		tokens:     tokens,
		start:      start,
		stack:      arraystack.New(),
		requireEOS: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Parser) init() {
	p.started = true
	p.stack.Push(stackitem{symbol: p.start})
	p.la = p.tokens.NextToken()
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("start parse with %s, lookahead = %v", p.start, p.la)
}

// step performs one step of the automaton. It returns an event of kind
// EndOfParse if the stack is exhausted. If build is set, step creates a
// node for the event and links it to its parent.
func (p *Parser) step(build bool) (event, error) {
	x, ok := p.stack.Peek()
	if !ok {
		if p.requireEOS && p.la.Symbol() != predictive.EOS {
			return event{kind: EndOfParse, token: p.la}, p.syntaxError("", []string{predictive.EOS})
		}
		tracer().Debugf("parse complete")
		return event{kind: EndOfParse, token: p.la}, nil
	}
	top := x.(stackitem)
	ev := event{symbol: top.symbol, token: p.la}
	if !p.table.IsNonTerminal(top.symbol) { // terminal on top
		if top.symbol != p.la.Symbol() {
			return ev, p.syntaxError(top.parentSym, []string{top.symbol})
		}
		tracer().Debugf("match %s %q", top.symbol, p.la.Lexeme())
		ev.kind = Terminal
		if build {
			ev.node = ptree.NewTerminal(top.symbol, p.la.Lexeme(),
				p.la.Line(), p.la.Column(), p.la.Span().From())
			top.parent.Add(ev.node)
		}
		p.stack.Pop()
		p.la = p.tokens.NextToken()
		return ev, nil
	}
	rule, ok := p.table.Lookup(top.symbol, p.la.Symbol())
	if !ok {
		return ev, p.syntaxError(top.symbol, p.table.Expected(top.symbol))
	}
	tracer().Debugf("expand %v with lookahead %s", rule, p.la.Symbol())
	p.stack.Pop()
	ev.rule = rule
	if build {
		ev.node = ptree.NewNonTerminal(top.symbol)
		ev.node.SetLocation(p.la.Line(), p.la.Column(), p.la.Span().From())
		if top.parent != nil {
			top.parent.Add(ev.node)
		}
	}
	if rule.IsEpsilon() {
		ev.kind = EmptyNonTerminal
		return ev, nil
	}
	ev.kind = EnterNonTerminal
	for i := rule.Len() - 1; i >= 0; i-- {
		p.stack.Push(stackitem{
			symbol:    rule.Symbol(i),
			parentSym: top.symbol,
			parent:    ev.node,
		})
	}
	return ev, nil
}

func (p *Parser) syntaxError(N string, expected []string) error {
	err := &SyntaxError{
		NonTerminal: N,
		Expected:    expected,
		Actual:      p.la.Symbol(),
		Lexeme:      p.la.Lexeme(),
		Line:        p.la.Line(),
		Column:      p.la.Column(),
		Position:    p.la.Span().From(),
	}
	tracer().Infof("%v", err)
	return err
}

// --- Event cursor ----------------------------------------------------------

// Read advances the parser by one step. It returns false if the parse is
// complete or has failed; in the latter case Err reports the error.
func (p *Parser) Read() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.init()
	}
	ev, err := p.step(false)
	p.current = ev
	if err != nil || ev.kind == EndOfParse {
		p.current.kind = EndOfParse
		p.err = err
		p.done = true
		return false
	}
	return true
}

// Err returns the error which stopped the parse, if any.
func (p *Parser) Err() error {
	return p.err
}

// NodeType returns the kind of the current event.
func (p *Parser) NodeType() NodeType {
	return p.current.kind
}

// Symbol returns the grammar symbol of the current event.
func (p *Parser) Symbol() string {
	if p.current.kind == EndOfParse {
		return ""
	}
	return p.current.symbol
}

// Value returns the lexeme of a terminal event, and "" for non-terminals.
func (p *Parser) Value() string {
	if p.current.kind != Terminal {
		return ""
	}
	return p.current.token.Lexeme()
}

// Token returns the token matched by a terminal event, and nil otherwise.
func (p *Parser) Token() predictive.Token {
	if p.current.kind != Terminal {
		return nil
	}
	return p.current.token
}

// Rule returns the rule a non-terminal event has been expanded with.
func (p *Parser) Rule() *ll.Rule {
	return p.current.rule
}

// Line returns the line of the current event. For non-terminals this is the
// line of the lookahead token at the time of expansion.
func (p *Parser) Line() int {
	if p.current.token == nil {
		return 0
	}
	return p.current.token.Line()
}

// Column returns the column of the current event.
func (p *Parser) Column() int {
	if p.current.token == nil {
		return 0
	}
	return p.current.token.Column()
}

// Position returns the input position of the current event.
func (p *Parser) Position() uint64 {
	if p.current.token == nil {
		return 0
	}
	return p.current.token.Span().From()
}

// --- Tree mode -------------------------------------------------------------

// ParseTree runs the parse to completion and returns the parse tree.
// If the parse fails, the tree built so far is returned together with the
// error.
func (p *Parser) ParseTree() (*ptree.Node, error) {
	return p.ParseTreeContext(context.Background())
}

// ParseTreeContext is like ParseTree, but checks ctx before every step of
// the parse. Every step is either performed completely or not at all.
func (p *Parser) ParseTreeContext(ctx context.Context) (*ptree.Node, error) {
	if p.started {
		return nil, errors.New("LL(1)-parser has already been used")
	}
	p.init()
	var root *ptree.Node
	for {
		if err := ctx.Err(); err != nil {
			p.done, p.err = true, err
			return root, err
		}
		ev, err := p.step(true)
		if err != nil {
			p.done, p.err = true, err
			return root, err
		}
		if ev.kind == EndOfParse {
			p.done = true
			return root, nil
		}
		if root == nil {
			root = ev.node
		}
	}
}
