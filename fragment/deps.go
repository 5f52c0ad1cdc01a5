package fragment

import "github.com/auto-stack/autolang/ast"

// Resolve maps a qualified name visible at fragment-scan time to the
// FragId that currently owns it. Indexing runs it over every referenced
// identifier found in a fragment's body or signature; unresolved names
// (builtins, not-yet-seen forward references) are simply skipped — the
// dependency graph is best-effort and widens as more files are indexed.
type Resolve func(name string) (FragId, bool)

// scanDeps walks n collecting every call target, member base, bare
// identifier, and type-reference name, resolving each through resolve
// and recording a dependency edge for anything that resolves to a
// fragment other than self.
func scanDeps(n ast.Node, self FragId, resolve Resolve, deps map[FragId]struct{}) {
	if n == nil {
		return
	}
	add := func(name string) {
		if name == "" {
			return
		}
		if id, ok := resolve(name); ok && id != self {
			deps[id] = struct{}{}
		}
	}

	switch v := n.(type) {
	case *ast.Function:
		for _, p := range v.Parameters {
			scanDeps(p.Type, self, resolve, deps)
		}
		if v.ReturnType != nil {
			scanDeps(v.ReturnType, self, resolve, deps)
		}
		scanDeps(v.Body, self, resolve, deps)
	case *ast.TagDecl:
		for _, e := range v.Entries {
			if e.Payload != nil {
				scanDeps(e.Payload, self, resolve, deps)
			}
		}
	case *ast.AliasDecl:
		scanDeps(v.Target, self, resolve, deps)
	case *ast.TopLevelStmt:
		scanDeps(v.Value, self, resolve, deps)
	case *ast.TypeRef:
		if v.Name != nil {
			add(v.Name.Value)
		}
		for _, a := range v.Arguments {
			scanDeps(a, self, resolve, deps)
		}
	case *ast.Block:
		for _, s := range v.Stmts {
			scanDeps(s, self, resolve, deps)
		}
	case *ast.LetStmt:
		if v.Type != nil {
			scanDeps(v.Type, self, resolve, deps)
		}
		scanDeps(v.Value, self, resolve, deps)
	case *ast.ReturnStmt:
		if v.Value != nil {
			scanDeps(v.Value, self, resolve, deps)
		}
	case *ast.ExprStmt:
		scanDeps(v.Value, self, resolve, deps)
	case *ast.Ident:
		add(v.Name)
	case *ast.ArrayLit:
		for _, e := range v.Elems {
			scanDeps(e, self, resolve, deps)
		}
	case *ast.BinaryOp:
		scanDeps(v.LHS, self, resolve, deps)
		scanDeps(v.RHS, self, resolve, deps)
	case *ast.UnaryOp:
		scanDeps(v.Operand, self, resolve, deps)
	case *ast.Postfix:
		scanDeps(v.Operand, self, resolve, deps)
	case *ast.Call:
		if id, ok := v.Target.(*ast.Ident); ok {
			add(id.Name)
		} else if m, ok := v.Target.(*ast.Member); ok {
			add(m.Name.Value)
			scanDeps(m.Object, self, resolve, deps)
		} else {
			scanDeps(v.Target, self, resolve, deps)
		}
		for _, a := range v.Arguments {
			scanDeps(a, self, resolve, deps)
		}
	case *ast.Member:
		scanDeps(v.Object, self, resolve, deps)
	case *ast.Index:
		scanDeps(v.Object, self, resolve, deps)
		scanDeps(v.Index, self, resolve, deps)
	case *ast.If:
		scanDeps(v.Condition, self, resolve, deps)
		scanDeps(v.Then, self, resolve, deps)
		if v.Else != nil {
			scanDeps(v.Else, self, resolve, deps)
		}
	case *ast.BlockExpr:
		scanDeps(v.Block, self, resolve, deps)
	case *ast.Is:
		scanDeps(v.Scrutinee, self, resolve, deps)
		for _, arm := range v.Arms {
			if tp, ok := arm.Pattern.(*ast.TagPattern); ok {
				add(tp.Tag.Value)
			}
			scanDeps(arm.Body, self, resolve, deps)
		}
	}
}
