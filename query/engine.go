// Package query implements the QueryEngine: memoised computations over
// Database snapshots, invalidated by the 熔断 rule (spec §4.D) — a
// cached result survives a body-only edit to a dependency and is only
// evicted when a dependency's signature (L2) or the query's own
// fragment identity (L3) actually changes.
package query

import (
	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/hash"
)

// Func computes a query's result against a read-only Database
// snapshot. A Func may itself call QueryEngine.Query to depend on
// another query's result; reentrant cycles are caught by the engine,
// not by Func.
type Func func(snap *database.Database) (interface{}, error)

// fingerprint records the inputs a cached result was computed from:
// the query's own fragment L3, and the L2 of every fragment currently
// listed as a forward dependency. A later lookup revalidates cheaply
// against the current snapshot instead of recomputing.
type fingerprint struct {
	l3    hash.Digest
	depL2 map[fragment.FragId]hash.Digest
}

func (fp fingerprint) validFor(snap *database.Database, id fragment.FragId) bool {
	cur, ok := snap.Hashes[id]
	if !ok || cur.L3 != fp.l3 {
		return false
	}
	for dep, l2 := range fp.depL2 {
		curDep, ok := snap.Hashes[dep]
		if !ok || curDep.L2 != l2 {
			return false
		}
	}
	return true
}

// capture fingerprints id as of snap: its own L3, plus the L2 of every
// fragment it currently depends on. This is deliberately coarser than
// "every G the query actually read" — it fingerprints id's full
// dependency set rather than tracing the query's real read set, so a
// cached entry may be invalidated slightly more eagerly than the spec
// strictly requires, never less.
func capture(snap *database.Database, id fragment.FragId) fingerprint {
	fp := fingerprint{depL2: map[fragment.FragId]hash.Digest{}}
	if h, ok := snap.Hashes[id]; ok {
		fp.l3 = h.L3
	}
	for dep := range snap.DepGraph.Forward[id] {
		if h, ok := snap.Hashes[dep]; ok {
			fp.depL2[dep] = h.L2
		}
	}
	return fp
}

// QueryEngine memoises Query(kind, key) -> Output across successive
// Database snapshots. One engine is shared for the lifetime of a
// CompileSession (lazily created, per spec §4.E); entries are
// invalidated lazily on lookup rather than flushed on every compile.
type QueryEngine struct {
	cache   *lru
	current *chainNode
}

// NewEngine returns a QueryEngine whose cache holds at most capacity
// entries (a non-positive capacity falls back to a default of 4096).
func NewEngine(capacity int) *QueryEngine {
	return &QueryEngine{cache: newLRU(capacity)}
}

// Query returns the memoised result for (kind, id, extra), recomputing
// via compute when no entry is cached or the cached one no longer
// validates against snap. id is both the query's cache key and the
// fragment whose forward deps are fingerprinted for invalidation.
func (qe *QueryEngine) Query(snap *database.Database, kind Kind, id fragment.FragId, extra string, compute Func) (interface{}, error) {
	key := Key{Kind: kind, Frag: id, Extra: extra}

	if qe.current.contains(key) {
		return nil, &CycleError{Key: key}
	}

	if e, ok := qe.cache.get(key); ok && e.fp.validFor(snap, id) {
		return e.value, nil
	}

	node := &chainNode{key: key, parent: qe.current}
	qe.current = node
	value, err := compute(snap)
	qe.current = node.parent
	if err != nil {
		return nil, err
	}

	qe.cache.put(&entry{key: key, value: value, fp: capture(snap, id)})
	return value, nil
}

// Invalidate drops every cached entry keyed to id, for callers that
// know a fragment was removed outright (validFor would eventually
// reach the same conclusion lazily, but Invalidate reclaims the slot
// immediately).
func (qe *QueryEngine) Invalidate(id fragment.FragId) {
	qe.cache.removeAllForFragment(id)
}

// Stats reports cache occupancy and hit/miss/eviction counters, backing
// CompileSession.Stats()'s "cache-entries" field.
type Stats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

func (qe *QueryEngine) Stats() Stats {
	return qe.cache.stats()
}
