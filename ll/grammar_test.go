package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/slices"
)

// We use the classic LL(1) expression grammar for testing:
//
//     E  ->  T E'
//     E' ->  + T E'  |  ε
//     T  ->  F T'
//     T' ->  * F T'  |  ε
//     F  ->  ( E )   |  int
//
func makeExpressionGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("int").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRuleEquality(t *testing.T) {
	r1 := NewRule("A", "a", "B")
	r2 := NewRule("A", "a", "B")
	r3 := NewRule("A", "a")
	if !r1.Equal(r2) || r1.Key() != r2.Key() {
		t.Errorf("expected rules %v and %v to be equal", r1, r2)
	}
	if r1.Equal(r3) || r1.Key() == r3.Key() {
		t.Errorf("expected rules %v and %v to differ", r1, r3)
	}
	eps := NewRule("A")
	if !eps.IsEpsilon() || eps.String() != "A ->" {
		t.Errorf("epsilon rule not recognized: %q", eps.String())
	}
	if r1.String() != "A -> a B" {
		t.Errorf("unexpected rule string %q", r1.String())
	}
	rhs := r1.RHS()
	rhs[0] = "x"
	if r1.Symbol(0) != "a" {
		t.Errorf("rule must not be mutable via RHS()")
	}
}

func TestGrammarClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	g := makeExpressionGrammar(t)
	g.Dump()
	if g.Size() != 8 {
		t.Errorf("expected 8 rules, have %d", g.Size())
	}
	nts := []string{"E", "E'", "T", "T'", "F"}
	if !slices.Equal(g.NonTerminals(), nts) {
		t.Errorf("expected non-terminals %v, have %v", nts, g.NonTerminals())
	}
	ts := []string{"+", "*", "(", ")", "int", "#EOS", "#ERROR"}
	if !slices.Equal(g.Terminals(), ts) {
		t.Errorf("expected terminals %v, have %v", ts, g.Terminals())
	}
	if g.Start() != "E" {
		t.Errorf("expected start symbol E, have %s", g.Start())
	}
	if !g.IsTerminal("int") || g.IsNonTerminal("int") || !g.IsNonTerminal("T'") {
		t.Errorf("symbol classification is broken")
	}
}

func TestGrammarDeduplicatesRules(t *testing.T) {
	g := NewGrammar("G")
	r1 := g.Add("S", "a")
	r2 := g.Add("S", "a")
	if r1 != r2 || g.Size() != 1 {
		t.Errorf("expected duplicate rule to be ignored, have %d rules", g.Size())
	}
	if r1.Serial() != 0 {
		t.Errorf("expected serial 0, have %d", r1.Serial())
	}
	if free := NewRule("S", "a"); free.Serial() != -1 {
		t.Errorf("expected free rule to have serial -1")
	}
}

func TestFreshName(t *testing.T) {
	g := makeExpressionGrammar(t)
	if n := g.FreshName("E"); n != "E2'" {
		t.Errorf("expected fresh name E2', have %s", n)
	}
	if n := g.FreshName("F"); n != "F'" {
		t.Errorf("expected fresh name F', have %s", n)
	}
	g.Add("F'", "x")
	g.Add("F2'", "y")
	if n := g.FreshName("F"); n != "F3'" {
		t.Errorf("expected fresh name F3', have %s", n)
	}
}

func TestGrammarBuilderErrors(t *testing.T) {
	if _, err := NewGrammarBuilder("empty").Grammar(); err == nil {
		t.Errorf("expected empty grammar to be rejected")
	}
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	if _, err := b.Start("a").Grammar(); err == nil {
		t.Errorf("expected terminal start symbol to be rejected")
	}
	g, err := b.Start("S").Grammar()
	if err != nil || g.Start() != "S" {
		t.Errorf("expected start symbol S, have %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	g1 := makeExpressionGrammar(t)
	g2 := makeExpressionGrammar(t)
	g2.Name = "other name"
	f1, err1 := g1.Fingerprint()
	f2, err2 := g2.Fingerprint()
	if err1 != nil || err2 != nil {
		t.Fatalf("fingerprinting failed: %v, %v", err1, err2)
	}
	if f1 != f2 {
		t.Errorf("expected structurally equal grammars to have equal fingerprints")
	}
	g2.Add("F", "float")
	if f3, _ := g2.Fingerprint(); f3 == f1 {
		t.Errorf("expected fingerprint to change with rules")
	}
}
