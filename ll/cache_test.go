package ll

import "testing"

func TestTableCache(t *testing.T) {
	tc, err := NewTableCache(2)
	if err != nil {
		t.Fatal(err)
	}
	pt1, err := tc.Compile(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	pt2, err := tc.Compile(makeExpressionGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if pt1 != pt2 || tc.Len() != 1 {
		t.Errorf("expected equal grammars to share a cached table")
	}
	g := NewGrammar("Conflict")
	g.Add("A", "a", "x")
	g.Add("A", "a", "y")
	if _, err := tc.Compile(g); err == nil {
		t.Errorf("expected conflicting grammar to fail")
	}
	if tc.Len() != 1 {
		t.Errorf("expected failed compilation not to be cached")
	}
	tc.Purge()
	if tc.Len() != 0 {
		t.Errorf("expected cache to be empty after purge")
	}
}

func TestTableCacheSize(t *testing.T) {
	if _, err := NewTableCache(0); err == nil {
		t.Errorf("expected cache of size 0 to be rejected")
	}
}
