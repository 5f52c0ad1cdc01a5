package database

import (
	"sort"
	"sync"

	"github.com/auto-stack/autolang/fragment"
)

// SymbolKind classifies an entry in the SymbolTable, mirroring
// fragment kinds plus the handful of kinds fragments don't carry
// (locals are tracked instead in infer.Context's own scopes).
type SymbolKind int

const (
	SymKindFunction SymbolKind = iota
	SymKindType
	SymKindAlias
	SymKindOther
)

// SymbolTable maps qualified names to the FragId that currently owns
// them (spec §3 "SymbolTable: Sid → Symbol"). This module's minimal
// grammar has no nested modules, so name resolution here is a single
// flat namespace per compile session rather than a full scope-parent
// chain; function-local scoping is handled separately by infer.Context.
type SymbolTable struct {
	mu      sync.RWMutex
	byName  map[string]fragment.FragId
	kindOf  map[fragment.FragId]SymbolKind
	nameOf  map[fragment.FragId]string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		byName: map[string]fragment.FragId{},
		kindOf: map[fragment.FragId]SymbolKind{},
		nameOf: map[fragment.FragId]string{},
	}
}

// Register binds id's qualified name to id, overwriting whatever
// fragment previously owned that name (last-registered wins).
// CompileSource unregisters a file's removed fragments before it
// registers the new ones.
func (t *SymbolTable) Register(id fragment.FragId, kind SymbolKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName[id.Name] = id
	t.kindOf[id] = kind
	t.nameOf[id] = id.Name
}

// Unregister removes id's entry; if another fragment has since claimed
// the same name, that mapping is left untouched.
func (t *SymbolTable) Unregister(id fragment.FragId) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byName[id.Name] == id {
		delete(t.byName, id.Name)
	}
	delete(t.kindOf, id)
	delete(t.nameOf, id)
}

// Lookup resolves a qualified name to its owning FragId.
func (t *SymbolTable) Lookup(name string) (fragment.FragId, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byName[name]
	return id, ok
}

// snapshot returns a shallow copy of t's tables, so a Database snapshot
// taken mid-session is not retroactively mutated by a later
// Register/Unregister against the live table.
func (t *SymbolTable) snapshot() *SymbolTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cp := newSymbolTable()
	for k, v := range t.byName {
		cp.byName[k] = v
	}
	for k, v := range t.kindOf {
		cp.kindOf[k] = v
	}
	for k, v := range t.nameOf {
		cp.nameOf[k] = v
	}
	return cp
}

// Names returns every currently-registered qualified name, sorted for
// determinism (used for "did you mean" suggestions).
func (t *SymbolTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.byName))
	for name := range t.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
