package database

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/infer"
	"github.com/auto-stack/autolang/types"
)

// Database implements infer.Resolver directly over its SymbolTable and
// Fragments, so inference reads the compile-time store without a
// separate adapter type.
var _ infer.Resolver = (*Database)(nil)

func genericNamesOf(gs []*ast.Identifier) []string {
	if len(gs) == 0 {
		return nil
	}
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Value
	}
	return out
}

// LookupFunction resolves name to its Function signature, computing and
// caching it in TypeInfo on first use.
func (db *Database) LookupFunction(name string) (*types.Function, []string, bool) {
	id, ok := db.Symbols.Lookup(name)
	if !ok || id.Kind != fragment.Function {
		return nil, nil, false
	}
	frag, ok := db.Fragments[id]
	if !ok {
		return nil, nil, false
	}
	fn, ok := frag.Body.(*ast.Function)
	if !ok {
		return nil, nil, false
	}
	if cached, ok := db.TypeInfo[id].(*types.Function); ok {
		return cached, genericNamesOf(fn.Generics), true
	}
	sig := infer.Signature(db, fn)
	db.TypeInfo[id] = sig
	return sig, genericNamesOf(fn.Generics), true
}

// LookupTagDecl resolves name to its TagDecl AST node.
func (db *Database) LookupTagDecl(name string) (*ast.TagDecl, bool) {
	id, ok := db.Symbols.Lookup(name)
	if !ok || id.Kind != fragment.Type {
		return nil, false
	}
	frag, ok := db.Fragments[id]
	if !ok {
		return nil, false
	}
	decl, ok := frag.Body.(*ast.TagDecl)
	return decl, ok
}

// LookupAliasTarget resolves name to its alias's target TypeRef and
// generic parameter names.
func (db *Database) LookupAliasTarget(name string) (*ast.TypeRef, []string, bool) {
	id, ok := db.Symbols.Lookup(name)
	if !ok || id.Kind != fragment.Alias {
		return nil, nil, false
	}
	frag, ok := db.Fragments[id]
	if !ok {
		return nil, nil, false
	}
	decl, ok := frag.Body.(*ast.AliasDecl)
	if !ok {
		return nil, nil, false
	}
	return decl.Target, genericNamesOf(decl.Generics), true
}

// Names returns every currently-registered qualified name, for
// "did you mean" suggestions on an undefined identifier.
func (db *Database) Names() []string {
	return db.Symbols.Names()
}
