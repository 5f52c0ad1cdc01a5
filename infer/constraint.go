package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// ConstraintKind identifies a Constraint's shape.
type ConstraintKind int

const (
	// Equal requires A and B to unify.
	Equal ConstraintKind = iota
	// Callable requires A to be a Function type.
	Callable
	// Indexable requires A to support `[]` indexing.
	Indexable
	// Subtype requires A to be assignable to B (currently resolved by
	// the same unification rules as Equal — AutoLang's lattice has no
	// separate subtyping beyond numeric widening).
	Subtype
)

// Constraint is one fact collected during inference and solved against
// the type lattice, per spec §4.C.
type Constraint struct {
	Kind ConstraintKind
	A, B types.Type
	Span ast.Span
}

// solve immediately resolves con against the current lattice state.
// AutoLang's inference is direct/bidirectional rather than deferred:
// constraints are solved as they are collected (still "collected and
// solved incrementally" per spec), so callers get a result type inline
// instead of through a later whole-context solve pass.
func (c *Context) solve(con Constraint) types.Type {
	c.addConstraint(con)
	switch con.Kind {
	case Callable:
		if fn, ok := con.A.(*types.Function); ok {
			return fn
		}
		if types.IsUnknown(con.A) {
			return con.A
		}
		c.errorf(con.Span, "E0102", "not callable: %s", con.A)
		return types.TheUnknown
	case Indexable:
		switch t := con.A.(type) {
		case *types.List:
			return t.Elem
		case *types.Array:
			return t.Elem
		case *types.Ptr:
			return t.Of
		default:
			if types.IsUnknown(con.A) {
				return types.TheUnknown
			}
			c.errorf(con.Span, "E0103", "not indexable: %s", con.A)
			return types.TheUnknown
		}
	default: // Equal, Subtype
		result, warns, err := types.Unify(con.A, con.B)
		for _, w := range warns {
			c.warnf(con.Span, "W0003", "%s", w.Message)
		}
		if err != nil {
			c.errorf(con.Span, "E0101", "%s", err.Error())
			return types.TheUnknown
		}
		return result
	}
}
