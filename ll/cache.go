package ll

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TableCache holds recently compiled parse tables, keyed by the fingerprint
// of their grammar. Structurally equal grammars share a table, regardless of
// grammar names or of how the grammars have been built.
//
// TableCache is safe for concurrent use.
type TableCache struct {
	tables *lru.Cache[string, *ParseTable]
}

// NewTableCache creates a cache holding at most size parse tables.
func NewTableCache(size int) (*TableCache, error) {
	tables, err := lru.New[string, *ParseTable](size)
	if err != nil {
		return nil, fmt.Errorf("cannot create table cache: %w", err)
	}
	return &TableCache{tables: tables}, nil
}

// Compile returns the cached parse table for g, if present. Otherwise it
// compiles g and caches the resulting table. Failed compilations are not
// cached. Options apply to compilations only; a cached table is returned
// as is.
func (tc *TableCache) Compile(g *Grammar, opts ...Option) (*ParseTable, error) {
	if g == nil {
		return nil, fmt.Errorf("cannot compile nil grammar")
	}
	key, err := g.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("cannot fingerprint grammar %s: %w", g.Name, err)
	}
	if pt, ok := tc.tables.Get(key); ok {
		tracer().Debugf("table cache hit for grammar %s", g.Name)
		return pt, nil
	}
	pt, err := Compile(g, opts...)
	if err != nil {
		return nil, err
	}
	tc.tables.Add(key, pt)
	return pt, nil
}

// Len returns the number of cached tables.
func (tc *TableCache) Len() int {
	return tc.tables.Len()
}

// Purge drops all cached tables.
func (tc *TableCache) Purge() {
	tc.tables.Purge()
}
