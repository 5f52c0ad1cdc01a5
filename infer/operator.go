package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

func isNumeric(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	if !ok {
		return false
	}
	switch p.Name {
	case "int", "uint", "usize", "byte", "float", "double":
		return true
	default:
		return false
	}
}

// inferBinaryOp maps (op, lhs, rhs) to a result type, emitting equality
// constraints per spec §4.C's operator table.
func (c *Context) inferBinaryOp(n *ast.BinaryOp, lhs, rhs types.Type) types.Type {
	switch n.Op {
	case "+", "-", "*", "/", "%":
		result := c.solve(Constraint{Kind: Equal, A: lhs, B: rhs, Span: n.Span()})
		if !types.IsUnknown(result) && !isNumeric(result) {
			c.errorf(n.Span(), "E0104", "operator %q requires numeric operands, found %s", n.Op, result)
			return types.TheUnknown
		}
		return result
	case "==", "!=", "<", "<=", ">", ">=":
		c.solve(Constraint{Kind: Equal, A: lhs, B: rhs, Span: n.Span()})
		return types.Bool
	case "&&", "||":
		c.solve(Constraint{Kind: Equal, A: lhs, B: types.Bool, Span: n.Span()})
		c.solve(Constraint{Kind: Equal, A: rhs, B: types.Bool, Span: n.Span()})
		return types.Bool
	default:
		c.errorf(n.Span(), "E0105", "unknown operator %q", n.Op)
		return types.TheUnknown
	}
}

func (c *Context) inferUnaryOp(n *ast.UnaryOp, operand types.Type) types.Type {
	switch n.Op {
	case "-":
		if !types.IsUnknown(operand) && !isNumeric(operand) {
			c.errorf(n.Span(), "E0104", "unary %q requires a numeric operand, found %s", n.Op, operand)
			return types.TheUnknown
		}
		return operand
	case "!":
		c.solve(Constraint{Kind: Equal, A: operand, B: types.Bool, Span: n.Span()})
		return types.Bool
	default:
		c.errorf(n.Span(), "E0105", "unknown operator %q", n.Op)
		return types.TheUnknown
	}
}
