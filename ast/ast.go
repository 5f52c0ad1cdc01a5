// Package ast holds the set of types used in the abstract syntax tree
// representation of AutoLang source. The surface lexer/parser is
// treated as an external collaborator by the incremental engine spec;
// this package and the sibling lexer/parser packages supply just
// enough of a real grammar to drive the engine end to end.
package ast

// Node is implemented by every AST node.
type Node interface {
	isNode()
	// Span returns the node's source byte range, used for diagnostics.
	Span() Span
}

// Span is a half-open byte range within a single file.
type Span struct {
	Start, End int
}

// Base is embedded by every concrete node to supply its Span and the
// isNode marker, mirroring gapil/ast's bare `func (T) isNode() {}` but
// carrying a position since this grammar's diagnostics need one.
type Base struct {
	Sp Span
}

func (b Base) Span() Span { return b.Sp }

// File is the root of the AST tree for one parsed `.at` source unit.
type File struct {
	Base
	Uses  []*Use
	Items []Item
}

func (File) isNode() {}

// Item is any top-level item: Function, TagDecl, AliasDecl or
// TopLevelStmt.
type Item interface {
	Node
	isItem()
}

// Use represents `use path.to.module: Alias`.
type Use struct {
	Base
	Path  []string
	Alias *Identifier // may be nil
}

func (Use) isNode() {}

// Identifier holds a parsed identifier.
type Identifier struct {
	Base
	Value string
}

func (Identifier) isNode() {}
