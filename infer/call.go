package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// inferCall types `target(args)`: builtin `May.val`/`May.err` wrapping,
// tag-entry construction (`Opt.some(x)`), and ordinary function calls
// with generic monomorphisation at the call site (spec §4.C).
func (c *Context) inferCall(n *ast.Call) types.Type {
	if m, ok := n.Target.(*ast.Member); ok {
		if id, ok := m.Object.(*ast.Ident); ok {
			switch id.Name {
			case "May":
				return c.inferMayConstructor(n, m)
			default:
				if tagDecl, ok := c.Resolver.LookupTagDecl(id.Name); ok {
					return c.inferTagConstructor(n, tagDecl, m.Name.Value)
				}
			}
		}
	}

	argTypes := make([]types.Type, len(n.Arguments))
	for i, a := range n.Arguments {
		argTypes[i] = c.InferExpr(a)
	}

	targetType := c.InferExpr(n.Target)
	fn, ok := targetType.(*types.Function)
	if !ok {
		if types.IsUnknown(targetType) {
			return types.TheUnknown
		}
		c.errorf(n.Span(), "E0102", "not callable: %s", targetType)
		return types.TheUnknown
	}
	if len(fn.Params) != len(argTypes) {
		c.errorf(n.Span(), "E0108", "expected %d argument(s), found %d", len(fn.Params), len(argTypes))
	}
	for i := 0; i < len(fn.Params) && i < len(argTypes); i++ {
		c.solve(Constraint{Kind: Equal, A: fn.Params[i], B: argTypes[i], Span: n.Arguments[i].Span()})
	}
	return fn.Ret
}

// inferMayConstructor types `May.val(e)` as may(type(e)) and
// `May.err(e)` as may(Unknown) — the error payload type is not tracked
// separately at this scope; Unknown's absorbing unification lets it
// merge correctly with the success path's may(T) at join points
// (spec §8 Scenario 4).
func (c *Context) inferMayConstructor(n *ast.Call, m *ast.Member) types.Type {
	if len(n.Arguments) != 1 {
		c.errorf(n.Span(), "E0108", "May.%s expects exactly 1 argument", m.Name.Value)
		return &types.May{Of: types.TheUnknown}
	}
	switch m.Name.Value {
	case "val":
		return &types.May{Of: c.InferExpr(n.Arguments[0])}
	case "err":
		c.InferExpr(n.Arguments[0])
		return &types.May{Of: types.TheUnknown}
	default:
		c.errorf(m.Span(), "E0201", "undefined name \"May.%s\"", m.Name.Value)
		return types.TheUnknown
	}
}

func (c *Context) inferTagConstructor(n *ast.Call, decl *ast.TagDecl, entryName string) types.Type {
	var entry *ast.TagEntry
	for _, e := range decl.Entries {
		if e.Name.Value == entryName {
			entry = e
			break
		}
	}
	if entry == nil {
		c.errorf(n.Span(), "E0201", "%s has no entry %q", decl.Name.Value, entryName)
		return types.TheUnknown
	}
	for _, a := range n.Arguments {
		c.InferExpr(a)
	}
	// A bare tag reference without explicit generic arguments resolves
	// its type parameters (if any) to Unknown, to be refined by the
	// surrounding context (e.g. the declared return type of the
	// enclosing function).
	args := make([]*ast.TypeRef, len(decl.Generics))
	return c.tagType(decl, args)
}
