package ll

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/slices"
)

func predictSymbols(items []PredictItem) []string {
	var syms []string
	for _, item := range items {
		syms = append(syms, item.Symbol)
	}
	return syms
}

func TestPredictTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	ga, err := Analysis(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, term := range ga.Grammar().Terminals() {
		items := ga.Predict().Items(term)
		if len(items) != 1 || items[0].Rule != nil || items[0].Symbol != term {
			t.Errorf("expected PREDICT(%s) = { %s }, have %v", term, term, items)
		}
	}
}

func TestPredictExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	ga, err := Analysis(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("PREDICT:\n%s", ga.Predict())
	expected := map[string][]string{
		"E":  {"(", "int"},
		"E'": {"+", ""},
		"T":  {"(", "int"},
		"T'": {"*", ""},
		"F":  {"(", "int"},
	}
	for N, syms := range expected {
		if diff := cmp.Diff(syms, predictSymbols(ga.Predict().Items(N))); diff != "" {
			t.Errorf("PREDICT(%s) mismatch (-want +got):\n%s", N, diff)
		}
		for _, item := range ga.Predict().Items(N) {
			if item.Rule == nil || item.Rule.LHS() != N {
				t.Errorf("expected item %v of %s to carry a rule for %s", item, N, N)
			}
		}
	}
}

func TestFollowExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	ga, err := Analysis(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("FOLLOW:\n%s", ga.Follow())
	expected := map[string][]string{
		"E":  {"#EOS", ")"},
		"E'": {"#EOS", ")"},
		"T":  {"+", "#EOS", ")"},
		"T'": {"+", "#EOS", ")"},
		"F":  {"*", "+", "#EOS", ")"},
	}
	for N, terms := range expected {
		have := ga.Follow().Terminals(N)
		slices.Sort(have)
		slices.Sort(terms)
		if diff := cmp.Diff(terms, have); diff != "" {
			t.Errorf("FOLLOW(%s) mismatch (-want +got):\n%s", N, diff)
		}
	}
	if !ga.Follow().Contains("F", "*") || ga.Follow().Contains("E", "*") {
		t.Errorf("FOLLOW membership is broken")
	}
}

func TestNullableLeadingNonTerminal(t *testing.T) {
	g := NewGrammar("G")
	g.Add("S", "A", "b")
	g.Add("A", "a")
	g.Add("A")
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	items := ga.Predict().Items("S")
	if diff := cmp.Diff([]string{"a", ""}, predictSymbols(items)); diff != "" {
		t.Errorf("PREDICT(S) mismatch (-want +got):\n%s", diff)
	}
	for _, item := range items {
		if item.Rule.LHS() != "S" {
			t.Errorf("expected deferred item to stay with the originating rule, have %v", item)
		}
	}
	if !ga.Follow().Contains("A", "b") {
		t.Errorf("expected b in FOLLOW(A), have %v", ga.Follow().Terminals("A"))
	}
}

func TestLeftRecursionIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	g := NewGrammar("LeftRec")
	g.Add("E", "E", "+", "T")
	g.Add("E", "T")
	g.Add("T", "int")
	_, err := Analysis(g)
	var gerr *GrammarError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GrammarError for left recursive grammar, have %v", err)
	}
	if gerr.Phase != "predict" || !slices.Contains(gerr.Unresolved, "E") {
		t.Errorf("expected E to be unresolved in predict phase, have %v", gerr)
	}
}

func TestPredictCycleIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	g := NewGrammar("Cycle")
	g.Add("A", "B")
	g.Add("B", "A")
	_, err := Analysis(g)
	var gerr *GrammarError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GrammarError for cyclic grammar, have %v", err)
	}
	if len(gerr.Unresolved) != 2 {
		t.Errorf("expected A and B to be unresolved, have %v", gerr.Unresolved)
	}
	if gerr.Rounds > 4 {
		t.Errorf("expected round cap of 4, have %d rounds", gerr.Rounds)
	}
}

func TestAnalysisUsesSnapshot(t *testing.T) {
	g := makeExpressionGrammar(t)
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	g.Add("F", "float")
	if ga.Grammar().Size() != 8 {
		t.Errorf("expected analysis to be unaffected by later rules")
	}
	if slices.Contains(predictSymbols(ga.Predict().Items("F")), "float") {
		t.Errorf("expected PREDICT(F) to be unaffected by later rules")
	}
}

func TestAnalysisRejectsEmptyGrammar(t *testing.T) {
	if _, err := Analysis(NewGrammar("empty")); err == nil {
		t.Errorf("expected empty grammar to be rejected")
	}
}
