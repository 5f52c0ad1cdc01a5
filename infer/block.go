package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// InferBlock infers b's statements in order and returns the block's
// value type: its last ExprStmt's type, or void (spec §3, §4.C).
func (c *Context) InferBlock(b *ast.Block) types.Type {
	c.push()
	defer c.pop()

	result := types.Type(types.Void)
	for i, stmt := range b.Stmts {
		t := c.inferStmt(stmt)
		if i == len(b.Stmts)-1 {
			if _, ok := stmt.(*ast.ExprStmt); ok {
				result = t
			} else {
				result = types.Void
			}
		}
	}
	return result
}

func (c *Context) inferStmt(s ast.Stmt) types.Type {
	switch n := s.(type) {
	case *ast.LetStmt:
		valueType := c.InferExpr(n.Value)
		declared := c.ResolveType(n.Type)
		var bound types.Type
		if n.Type != nil {
			bound = c.solve(Constraint{Kind: Equal, A: declared, B: valueType, Span: n.Span()})
		} else {
			bound = valueType
		}
		c.bind(n.Name.Value, bound)
		return types.Void

	case *ast.ReturnStmt:
		var valueType types.Type = types.Void
		if n.Value != nil {
			valueType = c.InferExpr(n.Value)
		}
		c.checkReturn(n.Span(), valueType)
		return types.Void

	case *ast.ExprStmt:
		return c.InferExpr(n.Value)

	default:
		return types.Void
	}
}

// checkReturn unifies a return statement's value against the enclosing
// function's declared return type, auto-wrapping a bare T into may(T)
// when the function returns may(T) (spec §4.C "auto-wrap").
func (c *Context) checkReturn(span ast.Span, valueType types.Type) {
	if c.currentRet == nil {
		return
	}
	if may, ok := c.currentRet.(*types.May); ok {
		if _, alreadyMay := valueType.(*types.May); alreadyMay {
			c.solve(Constraint{Kind: Equal, A: c.currentRet, B: valueType, Span: span})
			return
		}
		c.solve(Constraint{Kind: Equal, A: may.Of, B: valueType, Span: span})
		return
	}
	c.solve(Constraint{Kind: Equal, A: c.currentRet, B: valueType, Span: span})
}
