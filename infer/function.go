package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/types"
)

// InferFunction runs the full signature-inference fixpoint for fn
// (spec §4.C "Function signature inference"):
//  1. push a scope, bind parameters (explicit type, else Unknown)
//  2. infer the body, collecting constraints
//  3. (constraints are solved inline as collected — see constraint.go)
//  4. unify the declared return type (if any) against the body's type,
//     unless the body has no trailing value (void)
//  5. recursive self-calls borrow the signature under construction
func InferFunction(r Resolver, fn *ast.Function) (*Context, types.Type) {
	c := NewContext(r)
	c.push()

	paramTypes := make([]types.Type, len(fn.Parameters))
	for i, p := range fn.Parameters {
		t := c.ResolveType(p.Type)
		paramTypes[i] = t
		c.bind(p.Name.Value, t)
	}

	declaredRet := c.ResolveType(fn.ReturnType)
	c.currentRet = declaredRet
	if _, ok := declaredRet.(*types.May); ok {
		c.inMay = true
	}

	bodyType := c.InferBlock(fn.Body)

	var resultRet types.Type
	if fn.ReturnType != nil && bodyType == types.Void {
		// The body ends without a trailing value (e.g. in a `return`
		// statement); its return statements were already checked
		// against declaredRet by checkReturn.
		resultRet = declaredRet
	} else if fn.ReturnType != nil {
		resultRet = c.solve(Constraint{Kind: Equal, A: declaredRet, B: wrapIfMay(declaredRet, bodyType), Span: fn.Span()})
	} else {
		resultRet = bodyType
	}

	c.pop()
	return c, resultRet
}

// wrapIfMay implements the return-position auto-wrap rule for the
// final body expression the same way checkReturn does for explicit
// `return` statements: a may(T)-returning function whose body evaluates
// to plain T is treated as if `May.val(...)` had been written.
func wrapIfMay(declared, found types.Type) types.Type {
	may, ok := declared.(*types.May)
	if !ok {
		return found
	}
	if _, alreadyMay := found.(*types.May); alreadyMay {
		return found
	}
	if types.IsUnknown(found) {
		return found
	}
	return &types.May{Of: found}
}

// Signature computes fn's Function type without running body inference
// — used when another fragment only needs the callable shape (e.g. a
// forward reference), not a full InferFragment.
func Signature(r Resolver, fn *ast.Function) *types.Function {
	c := NewContext(r)
	params := make([]types.Type, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = c.ResolveType(p.Type)
	}
	ret := c.ResolveType(fn.ReturnType)
	return &types.Function{Params: params, Ret: ret}
}
