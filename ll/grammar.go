package ll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"

	"github.com/Egoushka/PredictiveAnalizator"
)

// Grammar is a type for a context-free grammar. Clients usually construct
// grammars with a GrammarBuilder, but may add rules directly as well.
//
// Symbol classification is purely syntactic: non-terminals are the left
// sides of rules, terminals are all other symbols occuring on the right
// sides, plus the reserved terminals #EOS and #ERROR.
type Grammar struct {
	Name  string
	rules []*Rule
	index map[string][]*Rule // structural hash → interned rules
	start string
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:  name,
		index: make(map[string][]*Rule),
	}
}

// AddRule appends a rule to the grammar and returns the grammar's own copy
// of it. Adding a rule equal to an existing one does not alter the grammar
// and returns the existing rule.
func (g *Grammar) AddRule(r *Rule) *Rule {
	key := r.Key()
	for _, x := range g.index[key] {
		if x.Equal(r) {
			tracer().Debugf("rule %v already present as #%d", r, x.serial)
			return x
		}
	}
	own := NewRule(r.lhs, r.rhs...)
	own.serial = len(g.rules)
	g.rules = append(g.rules, own)
	g.index[key] = append(g.index[key], own)
	return own
}

// Add is a shortcut for AddRule(NewRule(lhs, rhs...)).
func (g *Grammar) Add(lhs string, rhs ...string) *Rule {
	return g.AddRule(NewRule(lhs, rhs...))
}

// SetStart sets the start symbol explicitly.
func (g *Grammar) SetStart(sym string) {
	g.start = sym
}

// Start returns the start symbol. If none has been set, the left side of the
// first rule is used. For an empty grammar Start returns "".
func (g *Grammar) Start() string {
	if g.start == "" && len(g.rules) > 0 {
		return g.rules[0].lhs
	}
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. i.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns the rules of the grammar in insertion order.
func (g *Grammar) Rules() []*Rule {
	return slices.Clone(g.rules)
}

// NonTerminals returns the distinct left sides of the rules, in order of
// first occurence.
func (g *Grammar) NonTerminals() []string {
	seen := make(map[string]bool)
	var nts []string
	for _, r := range g.rules {
		if !seen[r.lhs] {
			seen[r.lhs] = true
			nts = append(nts, r.lhs)
		}
	}
	return nts
}

// Terminals returns every right side symbol which is not a non-terminal, in
// order of first occurence, followed by #EOS and #ERROR.
func (g *Grammar) Terminals() []string {
	nts := make(map[string]bool)
	for _, r := range g.rules {
		nts[r.lhs] = true
	}
	seen := make(map[string]bool)
	var ts []string
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if !nts[sym] && !seen[sym] && !predictive.IsSentinel(sym) {
				seen[sym] = true
				ts = append(ts, sym)
			}
		}
	}
	return append(ts, predictive.EOS, predictive.ErrorSymbol)
}

// Symbols returns all non-terminals, followed by all terminals.
func (g *Grammar) Symbols() []string {
	return append(g.NonTerminals(), g.Terminals()...)
}

// IsNonTerminal is a predicate: does sym appear as the left side of a rule?
func (g *Grammar) IsNonTerminal(sym string) bool {
	for _, r := range g.rules {
		if r.lhs == sym {
			return true
		}
	}
	return false
}

// IsTerminal is a predicate: is sym a terminal of this grammar?
func (g *Grammar) IsTerminal(sym string) bool {
	return slices.Contains(g.Terminals(), sym)
}

// FreshName returns a symbol name derived from base which does not collide
// with any symbol of the grammar: base' is tried first, then base2',
// base3', and so on.
func (g *Grammar) FreshName(base string) string {
	syms := g.Symbols()
	id := base
	for i := 1; ; i++ {
		s := id + "'"
		if !slices.Contains(syms, s) {
			return s
		}
		id = base + strconv.Itoa(i+1)
	}
}

// snapshot returns a copy of g which shares the (immutable) rules, but no
// mutable state.
func (g *Grammar) snapshot() *Grammar {
	s := NewGrammar(g.Name)
	s.rules = slices.Clone(g.rules)
	for k, v := range g.index {
		s.index[k] = slices.Clone(v)
	}
	s.start = g.Start()
	return s
}

// Fingerprint returns a structural hash of the grammar's start symbol and
// rules. Grammars with equal fingerprints produce equal parse tables.
func (g *Grammar) Fingerprint() (string, error) {
	shape := struct {
		Start string
		Rules []ruleShape
	}{Start: g.Start()}
	for _, r := range g.rules {
		shape.Rules = append(shape.Rules, r.shape())
	}
	return structhash.Hash(shape, 1)
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump is a debugging helper, tracing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper for constructing grammars. Use it like this:
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S  ->  A a
//    b.LHS("A").T("b").End()          // A  ->  b
//    b.LHS("A").Epsilon()             // A  ->
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	g     *Grammar
	start string
}

// NewGrammarBuilder creates a builder for a grammar named name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(name)}
}

// LHS starts a new rule with left side sym.
func (gb *GrammarBuilder) LHS(sym string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: sym}
}

// Start sets the start symbol of the grammar. If it is not set, the left
// side of the first rule will be the start symbol.
func (gb *GrammarBuilder) Start(sym string) *GrammarBuilder {
	gb.start = sym
	return gb
}

// Grammar returns the grammar built so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.g.Size() == 0 {
		return nil, errors.New("grammar has no rules")
	}
	if gb.start != "" {
		if !gb.g.IsNonTerminal(gb.start) {
			return nil, fmt.Errorf("start symbol %q is not a non-terminal of grammar %s",
				gb.start, gb.g.Name)
		}
		gb.g.SetStart(gb.start)
	}
	return gb.g, nil
}

// RuleBuilder collects the right side symbols of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// N appends a non-terminal to the right side.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T appends a terminal to the right side.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	return rb.gb.g.Add(rb.lhs, rb.rhs...)
}

// Epsilon adds an epsilon rule (discarding any symbols collected so far).
func (rb *RuleBuilder) Epsilon() *Rule {
	return rb.gb.g.Add(rb.lhs)
}
