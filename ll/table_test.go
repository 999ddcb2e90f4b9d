package ll

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseTableExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	pt, err := Compile(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", pt)
	cells := []struct {
		N, t string
		rule string
	}{
		{"E", "(", "E -> T E'"},
		{"E", "int", "E -> T E'"},
		{"E'", "+", "E' -> + T E'"},
		{"E'", ")", "E' ->"},
		{"E'", "#EOS", "E' ->"},
		{"T'", "*", "T' -> * F T'"},
		{"T'", "+", "T' ->"},
		{"F", "int", "F -> int"},
		{"F", "(", "F -> ( E )"},
	}
	for _, c := range cells {
		r, ok := pt.Lookup(c.N, c.t)
		if !ok {
			t.Errorf("expected entry at [%s, %s]", c.N, c.t)
			continue
		}
		if r.String() != c.rule {
			t.Errorf("expected [%s, %s] = %s, have %v", c.N, c.t, c.rule, r)
		}
	}
	if _, ok := pt.Lookup("F", "+"); ok {
		t.Errorf("expected [F, +] to be empty")
	}
	if _, ok := pt.Lookup("X", "+"); ok {
		t.Errorf("expected no row for unknown symbol X")
	}
	if diff := cmp.Diff([]string{"+", ")", "#EOS"}, pt.Expected("E'")); diff != "" {
		t.Errorf("Expected(E') mismatch (-want +got):\n%s", diff)
	}
	if pt.Size() != 13 {
		t.Errorf("expected 13 table entries, have %d", pt.Size())
	}
	if pt.Start() != "E" || !pt.IsNonTerminal("T'") || pt.IsNonTerminal("int") {
		t.Errorf("table does not reflect its grammar")
	}
}

func TestParseTableConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predictive.ll")
	defer teardown()
	//
	g := NewGrammar("Conflict")
	g.Add("A", "a", "x")
	g.Add("A", "a", "y")
	_, err := Compile(g)
	var cerr *ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, have %v", err)
	}
	if cerr.NonTerminal != "A" || cerr.Terminal != "a" {
		t.Errorf("expected conflict at [A, a], have [%s, %s]", cerr.NonTerminal, cerr.Terminal)
	}
	if cerr.Existing.String() != "A -> a x" || cerr.Conflicting.String() != "A -> a y" {
		t.Errorf("unexpected conflicting rules %v / %v", cerr.Existing, cerr.Conflicting)
	}
}

func TestParseTableRendering(t *testing.T) {
	pt, err := Compile(makeExpressionGrammar(t), DumpTables(true))
	if err != nil {
		t.Fatal(err)
	}
	s := pt.String()
	for _, frag := range []string{"#EOS", "T E'", "ε", "F T'"} {
		if !strings.Contains(s, frag) {
			t.Errorf("expected table rendering to contain %q", frag)
		}
	}
	var b strings.Builder
	if err := pt.WriteHTML(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "<table") || !strings.Contains(b.String(), "T -&gt; F T&#39;") {
		t.Errorf("unexpected HTML export:\n%s", b.String())
	}
}
