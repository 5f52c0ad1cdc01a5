package fragment

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/hash"
)

// IndexResult is what indexing one file's AST produces: the file's
// complete fragment table, plus the subsets whose L1 or L2 changed
// relative to old.
type IndexResult struct {
	Fragments map[FragId]*Fragment
	// Added holds fragments with no prior entry in old.
	Added map[FragId]bool
	// Dirty holds every fragment whose L1 changed since old (including
	// brand-new fragments).
	Dirty map[FragId]bool
	// SigChanged holds the subset whose L2 also changed; the caller
	// must propagate dirtiness transitively to their reverse dependents
	// (the 熔断 rule — body-only edits never do this).
	SigChanged map[FragId]bool
}

// IndexFile lowers file's top-level items into fragments, computing
// L1/L2/L3 for each and comparing against old (the file's previous
// fragment table, nil on first index). Names declared in file itself
// resolve to this result's fragments; any other referenced name is
// looked up through resolve for dependency-edge population, and names
// it cannot resolve (builtins, not-yet-indexed forward references) are
// skipped.
func IndexFile(fileID hash.FileId, src string, file *ast.File, old map[FragId]*Fragment, resolve Resolve) IndexResult {
	res := IndexResult{
		Fragments:  map[FragId]*Fragment{},
		Added:      map[FragId]bool{},
		Dirty:      map[FragId]bool{},
		SigChanged: map[FragId]bool{},
	}
	counts := map[string]int{}

	register := func(kind Kind, name string, span ast.Span, body ast.Node, l2 hash.Digest, generics []string) *Fragment {
		disamb := counts[name]
		counts[name]++
		id := FragId{File: fileID, Kind: kind, Name: name, Disambiguator: disamb}

		frag := newFragment(id, span, body)
		frag.Generics = generics
		frag.L1 = contentDigest(src[span.Start:span.End])
		frag.L2 = l2
		frag.L3 = L3Of(frag.L1, frag.L2)

		if prev, ok := old[id]; ok {
			if prev.L1 != frag.L1 {
				res.Dirty[id] = true
			}
			if prev.L2 != frag.L2 {
				res.SigChanged[id] = true
			}
		} else {
			res.Added[id] = true
			res.Dirty[id] = true
			res.SigChanged[id] = true
		}
		res.Fragments[id] = frag
		return frag
	}

	for _, item := range file.Items {
		switch it := item.(type) {
		case *ast.Function:
			register(Function, it.Name.Value, it.Span(), it, functionSig(it), genericsNames(it.Generics))
		case *ast.TagDecl:
			register(Type, it.Name.Value, it.Span(), it, tagSig(it), genericsNames(it.Generics))
		case *ast.AliasDecl:
			register(Alias, it.Name.Value, it.Span(), it, aliasSig(it), genericsNames(it.Generics))
		case *ast.TopLevelStmt:
			l1 := contentDigest(src[it.Span().Start:it.Span().End])
			// A top-level statement has no independent signature;
			// its L2 mirrors L1 so any edit is a signature edit.
			// Repeated top-level statements in one file disambiguate
			// by source order, keeping the name itself stable.
			register(TopLevelStmt, "<top-expr>", it.Span(), it, l1, nil)
		}
	}

	// Names declared in this file resolve to this result's own fragments
	// first, so same-file references get edges on the first index too,
	// before the caller has registered the new fragments anywhere.
	local := map[string]FragId{}
	for id := range res.Fragments {
		if id.Kind != TopLevelStmt {
			local[id.Name] = id
		}
	}
	lookup := func(name string) (FragId, bool) {
		if id, ok := local[name]; ok {
			return id, true
		}
		return resolve(name)
	}
	for id, frag := range res.Fragments {
		scanDeps(frag.Body, id, lookup, frag.Deps)
	}

	return res
}
