package ll

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Egoushka/PredictiveAnalizator/ll/sparse"
)

// ParseTable is an LL(1) parse table: for a non-terminal N on top of the
// parse stack and a lookahead terminal t it names the rule to expand N with.
// Cells are stored in a sparse matrix of rule serials, as most cells of a
// typical table are empty.
//
// A ParseTable is immutable once built and may be shared between parsers
// running in different goroutines.
type ParseTable struct {
	ga       *GrammarAnalysis
	nonterms []string
	terms    []string
	ntIndex  map[string]int
	tIndex   map[string]int
	cells    *sparse.IntMatrix
	conf     *config
}

// Compile analyses grammar g and constructs its parse table.
func Compile(g *Grammar, opts ...Option) (*ParseTable, error) {
	ga, err := Analysis(g, opts...)
	if err != nil {
		return nil, err
	}
	return NewParseTable(ga)
}

// NewParseTable constructs a parse table from a grammar analysis.
//
// For each predict item (r, s) of a non-terminal N the table gets an entry
// [N, s] = r. For deferred items (r, ε) the table gets an entry [N, f] = r
// for every terminal f in FOLLOW(N). If two different rules compete for a
// cell, the grammar is not LL(1) and a ConstructionError is returned.
func NewParseTable(ga *GrammarAnalysis) (*ParseTable, error) {
	if ga == nil {
		return nil, fmt.Errorf("cannot construct parse table without grammar analysis")
	}
	pt := &ParseTable{
		ga:       ga,
		nonterms: ga.nonterms,
		terms:    ga.terms,
		ntIndex:  make(map[string]int, len(ga.nonterms)),
		tIndex:   make(map[string]int, len(ga.terms)),
		conf:     ga.conf,
	}
	for i, N := range pt.nonterms {
		pt.ntIndex[N] = i
	}
	for j, t := range pt.terms {
		pt.tIndex[t] = j
	}
	tracer().Infof("parse table of size %d x %d", len(pt.nonterms), len(pt.terms))
	pt.cells = sparse.NewIntMatrix(len(pt.nonterms), len(pt.terms), sparse.DefaultNullValue)
	for _, N := range pt.nonterms {
		for _, item := range ga.predict.Items(N) {
			if !item.IsEpsilon() {
				if err := pt.enter(N, item.Symbol, item.Rule); err != nil {
					return nil, err
				}
				continue
			}
			follow := ga.follow.Terminals(N)
			tracer().Debugf("    Follow(%s) = %v", N, follow)
			for _, f := range follow {
				if err := pt.enter(N, f, item.Rule); err != nil {
					return nil, err
				}
			}
		}
	}
	tracer().Infof("parse table has %d entries", pt.cells.ValueCount())
	if pt.conf.dumpTables {
		pt.Dump()
	}
	return pt, nil
}

func (pt *ParseTable) enter(N, t string, r *Rule) error {
	i, j := pt.ntIndex[N], pt.tIndex[t]
	if v := pt.cells.Value(i, j); v != pt.cells.NullValue() {
		existing := pt.ga.g.rules[v]
		if existing == r {
			tracer().Debugf("    relax, double entry [%s, %s] = %v", N, t, r)
			return nil
		}
		err := &ConstructionError{
			NonTerminal: N,
			Terminal:    t,
			Existing:    existing,
			Conflicting: r,
		}
		tracer().Errorf("%v", err)
		return err
	}
	tracer().Debugf("    creating entry [%s, %s] = %v", N, t, r)
	pt.cells.Set(i, j, int32(r.serial))
	return nil
}

// Lookup returns the rule to expand non-terminal N with, given lookahead t.
// If the cell is empty, Lookup returns false.
func (pt *ParseTable) Lookup(N, t string) (*Rule, bool) {
	i, ok := pt.ntIndex[N]
	if !ok {
		return nil, false
	}
	j, ok := pt.tIndex[t]
	if !ok {
		return nil, false
	}
	v := pt.cells.Value(i, j)
	if v == pt.cells.NullValue() {
		return nil, false
	}
	return pt.ga.g.rules[v], true
}

// Expected returns the terminals with an entry in the row of N, in terminal
// order. These are the lookaheads a parser will accept with N on top of its
// stack.
func (pt *ParseTable) Expected(N string) []string {
	var exp []string
	for _, t := range pt.terms {
		if _, ok := pt.Lookup(N, t); ok {
			exp = append(exp, t)
		}
	}
	return exp
}

// Start returns the start symbol of the grammar.
func (pt *ParseTable) Start() string {
	return pt.ga.g.Start()
}

// Grammar returns the grammar snapshot the table has been built from.
func (pt *ParseTable) Grammar() *Grammar {
	return pt.ga.g
}

// Analysis returns the PREDICT and FOLLOW sets the table has been built from.
func (pt *ParseTable) Analysis() *GrammarAnalysis {
	return pt.ga
}

// IsNonTerminal is a predicate: does the table have a row for sym?
func (pt *ParseTable) IsNonTerminal(sym string) bool {
	_, ok := pt.ntIndex[sym]
	return ok
}

// Size returns the number of table entries.
func (pt *ParseTable) Size() int {
	return pt.cells.ValueCount()
}

func cellText(r *Rule, ok bool) string {
	if !ok {
		return ""
	}
	if r.IsEpsilon() {
		return "ε"
	}
	return strings.Join(r.rhs, " ")
}

// String renders the table as text, one row per non-terminal, one column per
// terminal. Cells show the right side of the rule to expand with.
func (pt *ParseTable) String() string {
	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(append([]string{""}, pt.terms...))
	for _, N := range pt.nonterms {
		row := make([]string, 0, len(pt.terms)+1)
		row = append(row, N)
		for _, t := range pt.terms {
			row = append(row, cellText(pt.Lookup(N, t)))
		}
		tw.Append(row)
	}
	tw.Render()
	return b.String()
}

// WriteHTML exports the parse table in HTML-format.
func (pt *ParseTable) WriteHTML(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "LL(1) parse table for grammar %s, %d entries<p>\n",
		html.EscapeString(pt.ga.g.Name), pt.cells.ValueCount())
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, t := range pt.terms {
		fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(t))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for _, N := range pt.nonterms {
		fmt.Fprintf(&b, "<tr><td>%s</td>\n", html.EscapeString(N))
		for _, t := range pt.terms {
			if r, ok := pt.Lookup(N, t); ok {
				td = html.EscapeString(r.String())
			} else {
				td = "&nbsp;"
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Dump is a debugging helper, tracing all entries of the table.
func (pt *ParseTable) Dump() {
	tracer().Debugf("--- parse table %s -------------------------", pt.ga.g.Name)
	pt.cells.Each(func(i, j int, v int32) {
		tracer().Debugf("[%s, %s] = %v", pt.nonterms[i], pt.terms[j], pt.ga.g.rules[v])
	})
	tracer().Debugf("-------------------------------------------")
}
