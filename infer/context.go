// Package infer implements AutoLang's bidirectional type inference:
// expression and function-signature inference over an open type
// lattice (package types), constraint collection, and diagnostics.
// Full Hindley-Milner is deliberately avoided (spec §4.C): generics are
// monomorphised at call sites, not solved via a unification-time
// substitution environment.
package infer

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/diag"
	"github.com/auto-stack/autolang/types"
)

// Resolver is the read-only view into compile-time declarations that
// inference needs: function signatures, declared types, and the name
// set available for "did you mean" suggestions. It is implemented by
// the database package over its SymbolTable/TypeInfo.
type Resolver interface {
	LookupFunction(name string) (*types.Function, []string /* generics */, bool)
	LookupTagDecl(name string) (*ast.TagDecl, bool)
	LookupAliasTarget(name string) (*ast.TypeRef, []string, bool)
	Names() []string
}

// Scope is one lexical level of bound names.
type Scope map[string]types.Type

// Context holds inference state for one fragment's worth of work,
// mirroring spec §4.C's InferenceContext.
type Context struct {
	Resolver Resolver

	scopes      []Scope
	constraints []Constraint
	currentRet  types.Type // nil when not inside a function body
	inMay       bool       // true when the enclosing function's return type is may(T)

	Errors   []*diag.Diagnostic
	Warnings []*diag.Diagnostic

	// genericBindings maps the generic parameter names in scope (from
	// the fragment currently being inferred) to their bound types
	// during monomorphisation; nil outside a generic context.
	genericBindings map[string]types.Type
}

// NewContext creates an inference context with one empty outer scope.
func NewContext(r Resolver) *Context {
	return &Context{Resolver: r, scopes: []Scope{{}}}
}

func (c *Context) push()  { c.scopes = append(c.scopes, Scope{}) }
func (c *Context) pop()   { c.scopes = c.scopes[:len(c.scopes)-1] }
func (c *Context) bind(name string, t types.Type) {
	c.scopes[len(c.scopes)-1][name] = t
}

// lookup walks scopes innermost-first.
func (c *Context) lookup(name string) (types.Type, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

func (c *Context) addConstraint(con Constraint) {
	c.constraints = append(c.constraints, con)
}

func (c *Context) errorf(span ast.Span, code string, format string, args ...interface{}) {
	c.Errors = append(c.Errors, diag.New(diag.Error, code, span, format, args...))
}

func (c *Context) warnf(span ast.Span, code string, format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, diag.New(diag.Warning, code, span, format, args...))
}

func newErrorDiag(span ast.Span, code, format string, args ...interface{}) *diag.Diagnostic {
	return diag.New(diag.Error, code, span, format, args...)
}
