package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/Egoushka/PredictiveAnalizator"
)

// PredictItem is a member of a PREDICT set: a rule of a non-terminal together
// with a terminal the rule may start with. For terminals the rule is nil.
//
// An item with an empty symbol is a deferred marker: the rule derives the
// empty string, and the terminals predicting it have to be taken from the
// FOLLOW set of the rule's left side.
type PredictItem struct {
	Rule   *Rule
	Symbol string
}

// IsEpsilon is true for deferred markers of rules deriving the empty string.
func (item PredictItem) IsEpsilon() bool {
	return item.Symbol == ""
}

func (item PredictItem) String() string {
	sym := item.Symbol
	if sym == "" {
		sym = "ε"
	}
	if item.Rule == nil {
		return sym
	}
	return fmt.Sprintf("%s[%v]", sym, item.Rule)
}

// GrammarAnalysis holds the PREDICT and FOLLOW sets of a grammar. It is
// created by Analysis, refers to a snapshot of the grammar and is immutable.
type GrammarAnalysis struct {
	g        *Grammar
	nonterms []string
	terms    []string
	isNT     map[string]bool
	predict  *PredictTable
	follow   *FollowTable
	conf     *config
}

// Analysis computes PREDICT and FOLLOW sets for a snapshot of grammar g.
// Rules added to g afterwards do not affect the analysis.
//
// Analysis returns a GrammarError if the sets cannot be resolved.
func Analysis(g *Grammar, opts ...Option) (*GrammarAnalysis, error) {
	if g == nil || g.Size() == 0 {
		return nil, fmt.Errorf("cannot analyse empty grammar")
	}
	ga := &GrammarAnalysis{
		g:    g.snapshot(),
		conf: newConfig(opts),
	}
	ga.nonterms = ga.g.NonTerminals()
	ga.terms = ga.g.Terminals()
	ga.isNT = make(map[string]bool, len(ga.nonterms))
	for _, N := range ga.nonterms {
		ga.isNT[N] = true
	}
	tracer().Debugf("analysing grammar %s: %d rules, %d non-terminals, %d terminals",
		ga.g.Name, ga.g.Size(), len(ga.nonterms), len(ga.terms))
	var err error
	if ga.predict, err = ga.computePredict(); err != nil {
		return nil, err
	}
	if ga.follow, err = ga.computeFollow(); err != nil {
		return nil, err
	}
	if ga.conf.dumpTables {
		tracer().Debugf("PREDICT:\n%s", ga.predict)
		tracer().Debugf("FOLLOW:\n%s", ga.follow)
	}
	return ga, nil
}

// Grammar returns the grammar snapshot this analysis is for.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// Predict returns the PREDICT table.
func (ga *GrammarAnalysis) Predict() *PredictTable {
	return ga.predict
}

// Follow returns the FOLLOW table.
func (ga *GrammarAnalysis) Follow() *FollowTable {
	return ga.follow
}

// IsNonTerminal is a predicate for symbols of the analysed grammar.
func (ga *GrammarAnalysis) IsNonTerminal(sym string) bool {
	return ga.isNT[sym]
}

// === PREDICT ===============================================================

// PredictTable maps grammar symbols to their PREDICT sets.
type PredictTable struct {
	symbols []string
	sets    map[string]*linkedhashset.Set // of PredictItem
}

// Items returns the PREDICT set of sym in insertion order.
func (pt *PredictTable) Items(sym string) []PredictItem {
	set, ok := pt.sets[sym]
	if !ok {
		return nil
	}
	items := make([]PredictItem, 0, set.Size())
	for _, x := range set.Values() {
		items = append(items, x.(PredictItem))
	}
	return items
}

func (pt *PredictTable) String() string {
	var b strings.Builder
	for _, sym := range pt.symbols {
		b.WriteString(sym)
		b.WriteString(" : {")
		for i, item := range pt.Items(sym) {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			b.WriteString(item.String())
		}
		b.WriteString(" }\n")
	}
	return b.String()
}

// computePredict resolves PREDICT sets round by round. Every round computes
// fresh sets from the previous round's sets, replacing items (r, M) for
// non-terminals M by (r, s) for every (_, s) in PREDICT(M).
func (ga *GrammarAnalysis) computePredict() (*PredictTable, error) {
	sets := make(map[string]*linkedhashset.Set, len(ga.nonterms)+len(ga.terms))
	for _, t := range ga.terms {
		sets[t] = linkedhashset.New(PredictItem{Symbol: t})
	}
	for _, N := range ga.nonterms {
		sets[N] = linkedhashset.New()
	}
	for _, r := range ga.g.rules {
		if r.IsEpsilon() {
			sets[r.lhs].Add(PredictItem{Rule: r})
		} else {
			sets[r.lhs].Add(PredictItem{Rule: r, Symbol: r.rhs[0]})
		}
	}
	limit := ga.conf.roundLimit(len(ga.nonterms))
	round := 0
	for changed := true; changed; {
		round++
		changed = false
		next := make(map[string]*linkedhashset.Set, len(sets))
		for _, t := range ga.terms {
			next[t] = sets[t]
		}
		for _, N := range ga.nonterms {
			fresh := linkedhashset.New()
			for _, x := range sets[N].Values() {
				item := x.(PredictItem)
				if !ga.isNT[item.Symbol] {
					fresh.Add(item)
					continue
				}
				for _, y := range sets[item.Symbol].Values() {
					fresh.Add(PredictItem{Rule: item.Rule, Symbol: y.(PredictItem).Symbol})
				}
			}
			if !sameMembers(sets[N], fresh) {
				changed = true
			}
			next[N] = fresh
		}
		sets = next
		tracer().Debugf("PREDICT round %d, changed=%v", round, changed)
		if changed && round >= limit {
			return nil, ga.unresolved("predict", round, sets)
		}
	}
	if err := ga.unresolved("predict", round, sets); err != nil {
		return nil, err
	}
	return &PredictTable{
		symbols: append(append([]string{}, ga.nonterms...), ga.terms...),
		sets:    sets,
	}, nil
}

// unresolved returns a GrammarError if any set still contains a non-terminal.
func (ga *GrammarAnalysis) unresolved(phase string, rounds int, sets map[string]*linkedhashset.Set) error {
	var syms []string
	for _, N := range ga.nonterms {
		for _, x := range sets[N].Values() {
			sym := ""
			switch m := x.(type) {
			case PredictItem:
				sym = m.Symbol
			case string:
				sym = m
			}
			if ga.isNT[sym] {
				syms = append(syms, N)
				break
			}
		}
	}
	if len(syms) == 0 {
		if phase == "predict" {
			return nil
		}
		syms = ga.nonterms
	}
	err := &GrammarError{
		Grammar:    ga.g.Name,
		Phase:      phase,
		Unresolved: syms,
		Rounds:     rounds,
	}
	tracer().Errorf("%v", err)
	return err
}

// === FOLLOW ================================================================

// FollowTable maps non-terminals to their FOLLOW sets.
type FollowTable struct {
	nonterms []string
	sets     map[string]*linkedhashset.Set // of string
}

// Terminals returns FOLLOW(N) in insertion order.
func (ft *FollowTable) Terminals(N string) []string {
	set, ok := ft.sets[N]
	if !ok {
		return nil
	}
	ts := make([]string, 0, set.Size())
	for _, x := range set.Values() {
		ts = append(ts, x.(string))
	}
	return ts
}

// Contains is a predicate: is t a member of FOLLOW(N)?
func (ft *FollowTable) Contains(N, t string) bool {
	set, ok := ft.sets[N]
	return ok && set.Contains(t)
}

func (ft *FollowTable) String() string {
	var b strings.Builder
	for _, N := range ft.nonterms {
		fmt.Fprintf(&b, "%s : {%s}\n", N, strings.Join(ft.Terminals(N), ", "))
	}
	return b.String()
}

// computeFollow collects FOLLOW sets from the rules of the grammar, augmented
// by a start rule
//
//    S' -> S #EOS
//
// Members of FOLLOW sets may be deferred: a non-terminal M as a member of
// FOLLOW(N) stands for all of FOLLOW(M). These references are resolved
// round by round, each round computing fresh sets from the previous ones.
// A reference of N to itself is dropped.
func (ga *GrammarAnalysis) computeFollow() (*FollowTable, error) {
	start := ga.g.Start()
	augmented := NewRule(ga.g.FreshName(start), start, predictive.EOS)
	tracer().Debugf("augmented start rule: %v", augmented)
	terms := make(map[string]*linkedhashset.Set, len(ga.nonterms))
	refs := make(map[string]*linkedhashset.Set, len(ga.nonterms))
	for _, N := range ga.nonterms {
		terms[N] = linkedhashset.New()
		refs[N] = linkedhashset.New()
	}
	addRef := func(N, M string) {
		if N == M {
			tracer().Debugf("FOLLOW(%s): dropping self reference", N)
			return
		}
		refs[N].Add(M)
	}
	rules := append([]*Rule{augmented}, ga.g.rules...)
	for _, r := range rules {
		if r.IsEpsilon() {
			addRef(r.lhs, r.lhs)
			continue
		}
		for i := 1; i < len(r.rhs); i++ {
			target := r.rhs[i-1]
			if !ga.isNT[target] {
				continue
			}
			for _, item := range ga.predict.Items(r.rhs[i]) {
				if item.IsEpsilon() {
					addRef(target, item.Rule.lhs)
				} else {
					terms[target].Add(item.Symbol)
				}
			}
		}
		if last := r.rhs[len(r.rhs)-1]; ga.isNT[last] {
			addRef(last, r.lhs)
		}
	}
	limit := ga.conf.roundLimit(len(ga.nonterms))
	round := 0
	for changed := true; changed; {
		round++
		changed = false
		next := make(map[string]*linkedhashset.Set, len(terms))
		for _, N := range ga.nonterms {
			fresh := linkedhashset.New(terms[N].Values()...)
			for _, M := range refs[N].Values() {
				fresh.Add(terms[M.(string)].Values()...)
			}
			if fresh.Size() != terms[N].Size() { // sets only grow
				changed = true
			}
			next[N] = fresh
		}
		terms = next
		tracer().Debugf("FOLLOW round %d, changed=%v", round, changed)
		if changed && round >= limit {
			return nil, ga.unresolved("follow", round, terms)
		}
	}
	return &FollowTable{
		nonterms: ga.nonterms,
		sets:     terms,
	}, nil
}

// sameMembers compares two sets without regard to order.
func sameMembers(a, b *linkedhashset.Set) bool {
	if a.Size() != b.Size() {
		return false
	}
	return a.Contains(b.Values()...)
}
