package ll

import (
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// Rule is a type for rules of a grammar, i.e. productions
//
//    LHS -> RHS[0] RHS[1] … RHS[n-1]
//
// A rule with an empty right hand side is an epsilon rule. Rules are
// immutable values: two rules are equal if their left and right sides are
// equal, symbol by symbol.
type Rule struct {
	lhs    string
	rhs    []string
	serial int // position within its grammar, -1 for free rules
}

// NewRule creates a rule which does not belong to a grammar (yet).
func NewRule(lhs string, rhs ...string) *Rule {
	return &Rule{
		lhs:    lhs,
		rhs:    slices.Clone(rhs),
		serial: -1,
	}
}

// LHS returns the left hand side non-terminal.
func (r *Rule) LHS() string {
	return r.lhs
}

// RHS returns a copy of the right hand side symbols.
func (r *Rule) RHS() []string {
	return slices.Clone(r.rhs)
}

// Len returns the number of right hand side symbols.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Symbol returns the right hand side symbol at position i.
func (r *Rule) Symbol(i int) string {
	return r.rhs[i]
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Serial returns the position of the rule within its grammar.
// Rules not belonging to a grammar return -1.
func (r *Rule) Serial() int {
	return r.serial
}

// Equal compares two rules structurally.
func (r *Rule) Equal(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.lhs == other.lhs && slices.Equal(r.rhs, other.rhs)
}

// ruleShape is what structhash sees of a rule.
type ruleShape struct {
	LHS string
	RHS []string
}

func (r *Rule) shape() ruleShape {
	return ruleShape{LHS: r.lhs, RHS: r.rhs}
}

// Key returns a structural hash of the rule. Equal rules have equal keys.
func (r *Rule) Key() string {
	key, _ := structhash.Hash(r.shape(), 1) // never fails for plain structs
	return key
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.lhs)
	b.WriteString(" ->")
	for _, sym := range r.rhs {
		b.WriteByte(' ')
		b.WriteString(sym)
	}
	return b.String()
}
