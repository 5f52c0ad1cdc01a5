package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// InferExpr computes e's type, recording constraints and diagnostics on
// c as it goes (spec §4.C "Expression inference (bottom-up)").
func (c *Context) InferExpr(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return types.Int
	case *ast.FloatLit:
		return types.Float
	case *ast.BoolLit:
		return types.Bool
	case *ast.StringLit:
		return types.Str

	case *ast.ArrayLit:
		elem := types.Type(types.TheUnknown)
		for _, el := range n.Elems {
			t := c.InferExpr(el)
			elem = c.solve(Constraint{Kind: Equal, A: elem, B: t, Span: el.Span()})
		}
		return &types.List{Elem: elem}

	case *ast.Ident:
		if t, ok := c.lookup(n.Name); ok {
			return t
		}
		if fn, _, ok := c.Resolver.LookupFunction(n.Name); ok {
			return fn
		}
		c.undefinedName(n.Name, n.Span())
		return types.TheUnknown

	case *ast.BinaryOp:
		lhs := c.InferExpr(n.LHS)
		rhs := c.InferExpr(n.RHS)
		return c.inferBinaryOp(n, lhs, rhs)

	case *ast.UnaryOp:
		operand := c.InferExpr(n.Operand)
		return c.inferUnaryOp(n, operand)

	case *ast.Postfix:
		return c.inferMayPostfix(n)

	case *ast.Call:
		return c.inferCall(n)

	case *ast.Member:
		return c.inferMember(n)

	case *ast.Index:
		objType := c.InferExpr(n.Object)
		idxType := c.InferExpr(n.Index)
		c.solve(Constraint{Kind: Equal, A: idxType, B: types.Int, Span: n.Index.Span()})
		return c.solve(Constraint{Kind: Indexable, A: objType, Span: n.Span()})

	case *ast.If:
		condType := c.InferExpr(n.Condition)
		c.solve(Constraint{Kind: Equal, A: condType, B: types.Bool, Span: n.Condition.Span()})
		thenType := c.InferBlock(n.Then)
		if n.Else == nil {
			if !types.IsUnknown(thenType) {
				if _, _, err := types.Unify(thenType, types.Void); err != nil {
					c.errorf(n.Span(), "E0101", "if without else must produce void, found %s", thenType)
				}
			}
			return types.Void
		}
		elseType := c.InferBlock(n.Else)
		return c.solve(Constraint{Kind: Equal, A: thenType, B: elseType, Span: n.Span()})

	case *ast.BlockExpr:
		return c.InferBlock(n.Block)

	case *ast.Is:
		return c.inferIs(n)

	default:
		c.errorf(e.Span(), "E0199", "unsupported expression")
		return types.TheUnknown
	}
}

// undefinedName reports an undefined identifier, attaching a "did you
// mean" suggestion when a close candidate exists (spec §7).
func (c *Context) undefinedName(name string, span ast.Span) {
	candidates := c.Resolver.Names()
	d := newErrorDiag(span, "E0201", "undefined name %q", name)
	if cand := suggest(name, candidates); cand != "" {
		d = d.WithHelp("did you mean '"+cand+"'?", cand)
	}
	c.Errors = append(c.Errors, d)
}

// inferMayPostfix types AutoLang's `.?` short-circuit propagation
// operator: the operand must be may(T); the expression's value type in
// the success path is T (spec §4.C, §8 Scenario 4).
func (c *Context) inferMayPostfix(n *ast.Postfix) types.Type {
	operand := c.InferExpr(n.Operand)
	may, ok := operand.(*types.May)
	if !ok {
		if types.IsUnknown(operand) {
			return types.TheUnknown
		}
		c.errorf(n.Span(), "E0106", "%q requires a may(T) operand, found %s", "?", operand)
		return types.TheUnknown
	}
	if !c.inMay {
		c.errorf(n.Span(), "E0107", "%q used outside a function returning may(T)", "?")
	}
	return may.Of
}

// inferMember types `object.name`. AutoLang's surface grammar in scope
// here has no user-defined struct fields (the minimal grammar supplies
// tag/alias/function declarations only — see module-map scoping
// notes), so a bare Member outside a Call target resolves against the
// builtin `May` namespace used by Scenario 4 and otherwise reports
// Unknown rather than failing the whole inference pass.
func (c *Context) inferMember(n *ast.Member) types.Type {
	if id, ok := n.Object.(*ast.Ident); ok && id.Name == "May" {
		return types.TheUnknown // bare `May.val`/`May.err` without a call has no value type
	}
	c.InferExpr(n.Object)
	return types.TheUnknown
}
