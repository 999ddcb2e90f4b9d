package ptree

import (
	"strings"
	"testing"

	"github.com/Egoushka/PredictiveAnalizator"
)

//     S -> A x B      A -> ε      B -> y
func makeTree() *Node {
	A := NewNonTerminal("A")
	A.SetLocation(1, 1, 0)
	B := NewNonTerminal("B").Add(NewTerminal("y", "de", 2, 3, 7))
	return NewNonTerminal("S").
		Add(A).
		Add(NewTerminal("x", "abc", 1, 1, 0)).
		Add(B)
}

func TestLocation(t *testing.T) {
	S := makeTree()
	if S.Line() != 1 || S.Column() != 1 || S.Position() != 0 {
		t.Errorf("expected S to start at 1:1, have %d:%d", S.Line(), S.Column())
	}
	if S.Length() != 9 || S.Span() != (predictive.Span{0, 9}) {
		t.Errorf("expected S to span (0…9), have %v", S.Span())
	}
	A := S.Children[0]
	if A.Length() != 0 || A.Line() != 1 || A.Column() != 1 {
		t.Errorf("expected empty node A at 1:1, have %d:%d, length %d", A.Line(), A.Column(), A.Length())
	}
	B := S.Children[2]
	if B.Line() != 2 || B.Column() != 3 || B.Span() != (predictive.Span{7, 9}) {
		t.Errorf("expected B at 2:3 spanning (7…9), have %d:%d %v", B.Line(), B.Column(), B.Span())
	}
}

func TestEmptyNodeBeforeInput(t *testing.T) {
	E := NewNonTerminal("E")
	E.SetLocation(3, 4, 20)
	S := NewNonTerminal("S").Add(NewTerminal("a", "a", 3, 2, 18)).Add(E)
	if S.Length() != 1 {
		t.Errorf("expected trailing empty node not to contribute to length, have %d", S.Length())
	}
	if E.Position() != 20 {
		t.Errorf("expected empty node to keep its recorded position, have %d", E.Position())
	}
}

func TestFillDescendants(t *testing.T) {
	nodes := makeTree().FillDescendantsAndSelf(nil)
	var syms []string
	for _, n := range nodes {
		syms = append(syms, n.Symbol)
	}
	if strings.Join(syms, " ") != "S A x B y" {
		t.Errorf("expected pre-order S A x B y, have %v", syms)
	}
}

func TestString(t *testing.T) {
	expected := `+- S
   +- A
   +- x abc
   +- B
      +- y de
`
	if s := makeTree().String(); s != expected {
		t.Errorf("unexpected tree rendering:\n%s", s)
	}
	F := NewNonTerminal("F").Add(NewTerminal("a", "1", 1, 1, 0))
	G := NewNonTerminal("G").Add(NewTerminal("b", "2", 1, 3, 2))
	expected = `+- S
   +- F
   |  +- a 1
   +- G
      +- b 2
`
	if s := NewNonTerminal("S").Add(F).Add(G).String(); s != expected {
		t.Errorf("unexpected tree rendering:\n%s", s)
	}
}

func TestRender(t *testing.T) {
	s, err := makeTree().Render()
	if err != nil {
		t.Fatal(err)
	}
	for _, frag := range []string{"S", "A ε", `x "abc"`, `y "de"`} {
		if !strings.Contains(s, frag) {
			t.Errorf("expected rendering to contain %q, have\n%s", frag, s)
		}
	}
}
