package ll

import (
	"fmt"
	"strings"
)

// GrammarError is returned by Analysis if PREDICT or FOLLOW sets cannot be
// resolved. This happens for grammars with predict cycles, e.g. left
// recursive grammars, which are not suited for LL(1) parsing.
type GrammarError struct {
	Grammar    string   // name of the grammar
	Phase      string   // "predict" or "follow"
	Unresolved []string // non-terminals with unresolved set members
	Rounds     int      // rounds computed before giving up
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar %s: %s sets unresolvable after %d rounds, cycle involves {%s}",
		e.Grammar, e.Phase, e.Rounds, strings.Join(e.Unresolved, ", "))
}

// ConstructionError is returned if two different rules compete for the same
// cell of a parse table, i.e. if a grammar is not LL(1).
type ConstructionError struct {
	NonTerminal string
	Terminal    string
	Existing    *Rule // rule occupying the cell
	Conflicting *Rule // rule trying to claim the cell
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): cell [%s, %s] claimed by rules (%v) and (%v)",
		e.NonTerminal, e.Terminal, e.Existing, e.Conflicting)
}
