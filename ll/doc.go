/*
Package ll implements prerequisites for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Whether a symbol
is a terminal or not is decided syntactically: every symbol appearing on the
left side of a rule is a non-terminal, every other symbol is a terminal.
Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").N("T").N("E'").End()           // E  ->  T E'
    b.LHS("E'").T("+").N("T").N("E'").End()   // E' ->  + T E'
    b.LHS("E'").Epsilon()                     // E' ->
    b.LHS("T").N("F").N("T'").End()           // T  ->  F T'
    b.LHS("T'").T("*").N("F").N("T'").End()   // T' ->  * F T'
    b.LHS("T'").Epsilon()                     // T' ->
    b.LHS("F").T("(").N("E").T(")").End()     // F  ->  ( E )
    b.LHS("F").T("int").End()                 // F  ->  int
    g, err := b.Grammar()

Every grammar implicitly knows two additional terminals, #EOS and #ERROR,
marking the end of input and input which could not be tokenized.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to Analysis, which computes PREDICT and FOLLOW sets
for a snapshot of the grammar. Grammars which contain predict cycles (e.g.,
left recursion) are rejected with a GrammarError.

    ga, err := ll.Analysis(g)
    for _, N := range ga.Grammar().NonTerminals() {
        fmt.Printf("FOLLOW(%s) = %v\n", N, ga.Follow().Terminals(N))
    }

Parser Construction

Using grammar analysis as input, a parse table is constructed. Every cell
of the table holds at most one rule; if two rules compete for a cell, the
grammar is not LL(1) and construction fails with a ConstructionError.

    table, err := ll.NewParseTable(ga)   // or ll.Compile(g) in one step

The table is immutable and may be shared between any number of parsers
(see package ll1).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predictive.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predictive.ll")
}
