package database

import (
	"github.com/auto-stack/autolang/diag"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/hash"
	"github.com/auto-stack/autolang/parser"
)

// CompileResult is what CompileSource reports back to its caller (a
// CompileSession or a test), separate from the Patch appended to
// PatchLog: the file's identity, the fragments it now owns, and any
// parse diagnostics.
type CompileResult struct {
	FileID hash.FileId

	// Fragments is the complete, current set of fragment ids owned by
	// this file after the compile (not just the changed ones).
	Fragments map[fragment.FragId]struct{}

	ParseErrors parser.ErrorList

	// Warnings carries file-level diagnostics that are not tied to any
	// one fragment's inference, such as a redundant `use` against the
	// prelude (spec §8 Scenario 6).
	Warnings []*diag.Diagnostic

	// Unparsable is set when the parser returned no tree at all for the
	// file; parser.Parse always returns a (possibly partial) tree, so
	// a file with syntax errors is indexed from that partial tree.
	// CompileSource sets no fragment's own Unparsable flag.
	Unparsable bool
}

// CompileSource runs the full hash -> index -> dep-scan -> dirty-propagate
// pipeline for one file (spec §4.A-§4.B): the file's text is stored and
// normalised, reparsed, lowered into fragments, diffed against the
// file's previous fragment table, and the resulting dirtiness is
// propagated transitively through the reverse dependency graph before
// this call returns — CompileSource never leaves DirtySet stale for a
// caller that immediately queries it.
func (db *Database) CompileSource(path, text string, errorLimit int) CompileResult {
	db.mu.Lock()
	defer db.mu.Unlock()

	fileID, _ := db.Files.Put(path, text)
	norm := db.Files.Get(fileID).Text

	file, errs := parser.Parse(norm, errorLimit)

	old := db.fileFragments[fileID]

	resolve := fragment.Resolve(func(name string) (fragment.FragId, bool) {
		return db.Symbols.Lookup(name)
	})

	ir := fragment.IndexFile(fileID, norm, file, old, resolve)

	var removed []fragment.FragId
	for id := range old {
		if _, stillPresent := ir.Fragments[id]; !stillPresent {
			removed = append(removed, id)
		}
	}

	// Removed fragments must propagate to their reverse dependents
	// before their own dep edges are torn down by removeFragment.
	for _, id := range removed {
		db.propagateSignatureChange(id)
		db.removeFragment(id)
		delete(db.DirtySet, id) // the fragment itself no longer exists
	}

	for id, frag := range ir.Fragments {
		db.addFragment(frag)
		if ir.Dirty[id] {
			db.DirtySet[id] = true
		}
	}
	for id := range ir.SigChanged {
		db.propagateSignatureChange(id)
	}

	db.fileFragments[fileID] = ir.Fragments

	patch := &fragment.Patch{Fragments: map[fragment.FragId]*fragment.Fragment{}}
	for id := range ir.Added {
		patch.Added = append(patch.Added, id)
		patch.Fragments[id] = ir.Fragments[id]
		patch.Relocations = append(patch.Relocations, fragment.Relocation{To: id})
	}
	for id := range ir.Dirty {
		if ir.Added[id] {
			continue
		}
		patch.Updated = append(patch.Updated, id)
		patch.Fragments[id] = ir.Fragments[id]
		patch.Relocations = append(patch.Relocations, fragment.Relocation{From: id, To: id})
	}
	patch.Removed = removed
	if !patch.Empty() {
		db.PatchLog = append(db.PatchLog, *patch)
	}

	owned := make(map[fragment.FragId]struct{}, len(ir.Fragments))
	for id := range ir.Fragments {
		owned[id] = struct{}{}
	}

	var warnings []*diag.Diagnostic
	if file != nil {
		warnings = checkRedundantUses(file.Uses)
	}

	return CompileResult{
		FileID:      fileID,
		Fragments:   owned,
		ParseErrors: errs,
		Warnings:    warnings,
		Unparsable:  file == nil,
	}
}
