package ll

import "github.com/npillmayer/schuko/gconf"

// Option configures grammar analysis and table construction.
type Option func(c *config)

type config struct {
	maxRounds  int  // fixpoint round cap, 0 = derive from grammar size
	dumpTables bool // trace computed tables
}

// Defaults are read from the global configuration:
//
//    ll-max-rounds    int    cap for fixpoint rounds (0 = |non-terminals|+2)
//    ll-dump-tables   bool   trace PREDICT, FOLLOW and parse tables
//
func newConfig(opts []Option) *config {
	c := &config{
		maxRounds:  gconf.GetInt("ll-max-rounds"),
		dumpTables: gconf.GetBool("ll-dump-tables"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxRounds caps the number of rounds for the fixpoint computations of
// PREDICT and FOLLOW sets. Grammars needing more rounds are rejected with a
// GrammarError. n ≤ 0 derives the cap from the number of non-terminals,
// which is sufficient for every grammar free of predict cycles.
func MaxRounds(n int) Option {
	return func(c *config) {
		c.maxRounds = n
	}
}

// DumpTables sets or clears tracing of the computed tables.
func DumpTables(b bool) Option {
	return func(c *config) {
		c.dumpTables = b
	}
}

func (c *config) roundLimit(nonterminals int) int {
	if c.maxRounds > 0 {
		return c.maxRounds
	}
	return nonterminals + 2
}
