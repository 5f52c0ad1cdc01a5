package fragment

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/hash"
)

// Fragment is the minimum recompilation unit: a function, type, impl,
// spec, alias, ext, or top-level statement, plus its identity hashes
// and the set of fragments it depends on.
type Fragment struct {
	ID FragId

	// L1 is the content hash of the fragment's full source text.
	L1 hash.Digest
	// L2 is the signature hash: for a function, (param types, return
	// type, generics, attributes); for a type, (fields, generics,
	// declared specs); bodies are deliberately excluded.
	L2 hash.Digest
	// L3 is hash(L1 ‖ L2), used as the query cache key.
	L3 hash.Digest

	// Deps is populated by the dependency scanner after indexing.
	Deps map[FragId]struct{}

	Span       ast.Span
	Generics   []string
	Unparsable bool

	// Body is the fragment's owning AST item (nil for a fragment whose
	// owning file failed to parse).
	Body ast.Node
}

// L3Of combines l1 and l2 into the fragment's cache key.
func L3Of(l1, l2 hash.Digest) hash.Digest { return hash.Combine(l1, l2) }

func newFragment(id FragId, span ast.Span, body ast.Node) *Fragment {
	return &Fragment{ID: id, Span: span, Body: body, Deps: map[FragId]struct{}{}}
}
