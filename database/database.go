// Package database implements the AIE's compile-time store: an
// immutable-by-snapshot aggregate of the file store, fragment table,
// dependency graph, dirty set, symbol table, and interned type info
// (spec §3 "Database").
package database

import (
	"sync"

	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/hash"
	"github.com/auto-stack/autolang/types"
)

// HashTriple is the (L1, L2, L3) record the spec names as the
// Database's own `Hashes` field, kept alongside each Fragment for
// cheap lookup without walking the fragment's struct.
type HashTriple struct{ L1, L2, L3 hash.Digest }

// Database is the process-wide compile-time store, owned by exactly
// one CompileSession. Snapshot copies each fragment-keyed map (and the
// dependency sets inside DepGraph) into fresh maps at O(fragments)
// cost, snapshots the SymbolTable, and shares the FileStore pointer
// (see DESIGN.md's stdlib-justifications entry for why no
// persistent-map library backs this instead).
type Database struct {
	mu sync.RWMutex

	Files     *hash.FileStore
	Fragments map[fragment.FragId]*fragment.Fragment
	Hashes    map[fragment.FragId]HashTriple

	// DepGraph.Forward[f] is the set of fragments f depends on;
	// Reverse[f] is the set of fragments that depend on f.
	DepGraph DepGraph

	DirtySet map[fragment.FragId]bool

	Symbols *SymbolTable

	// TypeInfo caches resolved *types.Function signatures of Function
	// fragments, filled lazily by LookupFunction; Type and Alias
	// fragments get no entry here.
	TypeInfo map[fragment.FragId]types.Type

	PatchLog   []fragment.Patch
	checkpoint map[string]map[fragment.FragId]*fragment.Fragment

	// fileFragments indexes a file's own fragments, so re-indexing it
	// can diff against exactly its prior contribution.
	fileFragments map[hash.FileId]map[fragment.FragId]*fragment.Fragment
}

// DepGraph holds both directions of the fragment dependency graph.
type DepGraph struct {
	Forward map[fragment.FragId]map[fragment.FragId]struct{}
	Reverse map[fragment.FragId]map[fragment.FragId]struct{}
}

func newDepGraph() DepGraph {
	return DepGraph{
		Forward: map[fragment.FragId]map[fragment.FragId]struct{}{},
		Reverse: map[fragment.FragId]map[fragment.FragId]struct{}{},
	}
}

// New returns an empty Database.
func New() *Database {
	return &Database{
		Files:         hash.NewFileStore(),
		Fragments:     map[fragment.FragId]*fragment.Fragment{},
		Hashes:        map[fragment.FragId]HashTriple{},
		DepGraph:      newDepGraph(),
		DirtySet:      map[fragment.FragId]bool{},
		Symbols:       newSymbolTable(),
		TypeInfo:      map[fragment.FragId]types.Type{},
		checkpoint:    map[string]map[fragment.FragId]*fragment.Fragment{},
		fileFragments: map[hash.FileId]map[fragment.FragId]*fragment.Fragment{},
	}
}

// Snapshot returns a read-only view whose top-level maps are shallow
// copies (mirroring hash.FileStore.Snapshot's own approach): an
// O(fragments) copy of each map's current entries, not a deep copy of
// fragment bodies or source text. CompileSource mutates the live
// Database's maps in place, so without this copy a previously-taken
// Database would keep changing underneath an in-flight Evaler as later
// compiles land — copying the map headers here is what actually makes
// a snapshot immutable from the caller's perspective.
func (db *Database) Snapshot() *Database {
	db.mu.RLock()
	defer db.mu.RUnlock()

	fragments := make(map[fragment.FragId]*fragment.Fragment, len(db.Fragments))
	for k, v := range db.Fragments {
		fragments[k] = v
	}
	hashes := make(map[fragment.FragId]HashTriple, len(db.Hashes))
	for k, v := range db.Hashes {
		hashes[k] = v
	}
	dirty := make(map[fragment.FragId]bool, len(db.DirtySet))
	for k, v := range db.DirtySet {
		dirty[k] = v
	}
	typeInfo := make(map[fragment.FragId]types.Type, len(db.TypeInfo))
	for k, v := range db.TypeInfo {
		typeInfo[k] = v
	}

	forward := make(map[fragment.FragId]map[fragment.FragId]struct{}, len(db.DepGraph.Forward))
	for k, set := range db.DepGraph.Forward {
		forward[k] = copyFragSet(set)
	}
	reverse := make(map[fragment.FragId]map[fragment.FragId]struct{}, len(db.DepGraph.Reverse))
	for k, set := range db.DepGraph.Reverse {
		reverse[k] = copyFragSet(set)
	}

	return &Database{
		Files:         db.Files,
		Fragments:     fragments,
		Hashes:        hashes,
		DepGraph:      DepGraph{Forward: forward, Reverse: reverse},
		DirtySet:      dirty,
		Symbols:       db.Symbols.snapshot(),
		TypeInfo:      typeInfo,
		checkpoint:    db.checkpoint,
		fileFragments: db.fileFragments,
	}
}

func copyFragSet(in map[fragment.FragId]struct{}) map[fragment.FragId]struct{} {
	out := make(map[fragment.FragId]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

// removeFragment retires a fragment entirely: its hashes, dep edges
// (both directions), symbol entry, and cached type info.
func (db *Database) removeFragment(id fragment.FragId) {
	delete(db.Fragments, id)
	delete(db.Hashes, id)
	delete(db.TypeInfo, id)
	delete(db.DirtySet, id)
	for dep := range db.DepGraph.Forward[id] {
		if rev, ok := db.DepGraph.Reverse[dep]; ok {
			delete(rev, id)
		}
	}
	delete(db.DepGraph.Forward, id)
	delete(db.DepGraph.Reverse, id)
	db.Symbols.Unregister(id)
}

// addFragment installs or overwrites a fragment and its dep edges.
func (db *Database) addFragment(frag *fragment.Fragment) {
	id := frag.ID
	db.Fragments[id] = frag
	db.Hashes[id] = HashTriple{L1: frag.L1, L2: frag.L2, L3: frag.L3}
	db.Symbols.Register(id, kindToSymbolKind(frag.ID.Kind))

	if old, ok := db.DepGraph.Forward[id]; ok {
		for dep := range old {
			if rev, ok := db.DepGraph.Reverse[dep]; ok {
				delete(rev, id)
			}
		}
	}
	fwd := map[fragment.FragId]struct{}{}
	for dep := range frag.Deps {
		fwd[dep] = struct{}{}
		if db.DepGraph.Reverse[dep] == nil {
			db.DepGraph.Reverse[dep] = map[fragment.FragId]struct{}{}
		}
		db.DepGraph.Reverse[dep][id] = struct{}{}
	}
	db.DepGraph.Forward[id] = fwd
}

// propagateSignatureChange marks id and, transitively, every reverse
// dependent dirty — the 熔断 rule's signature-change side (spec §4.B
// step 6, §8 invariant 3).
func (db *Database) propagateSignatureChange(id fragment.FragId) {
	visited := map[fragment.FragId]bool{}
	var walk func(fragment.FragId)
	walk = func(cur fragment.FragId) {
		if visited[cur] {
			return
		}
		visited[cur] = true
		db.DirtySet[cur] = true
		delete(db.TypeInfo, cur) // evict any cached inference result
		for dep := range db.DepGraph.Reverse[cur] {
			walk(dep)
		}
	}
	walk(id)
}

// kindToSymbolKind maps a fragment's Kind to the SymbolKind addFragment
// records in the symbol table.
func kindToSymbolKind(k fragment.Kind) SymbolKind {
	switch k {
	case fragment.Function:
		return SymKindFunction
	case fragment.Type:
		return SymKindType
	case fragment.Alias:
		return SymKindAlias
	default:
		return SymKindOther
	}
}
