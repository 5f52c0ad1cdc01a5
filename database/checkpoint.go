package database

import "github.com/auto-stack/autolang/fragment"

// Label records a named checkpoint of the fragment table's current
// state, for later diffing via PatchSince (spec §4.E "label(name) /
// patch_since(label) -> Patch: checkpointing for hot-reload").
// Re-labelling an existing name overwrites its checkpoint.
func (db *Database) Label(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	snap := make(map[fragment.FragId]*fragment.Fragment, len(db.Fragments))
	for id, frag := range db.Fragments {
		snap[id] = frag
	}
	db.checkpoint[name] = snap
}

// PatchSince computes the patch moving the fragment table from the
// named checkpoint to its current state. ok is false if name was never
// labelled.
func (db *Database) PatchSince(name string) (patch *fragment.Patch, ok bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	before, ok := db.checkpoint[name]
	if !ok {
		return nil, false
	}
	return fragment.Diff(before, db.Fragments), true
}
