// Package eval implements the Evaler: a transient bridge between a
// read-only Database snapshot and a mutable ExecutionEngine (spec
// §4.E). It never mutates the Database; it resolves symbols by reading
// it and runtime bindings by reading/writing the ExecutionEngine.
package eval

import (
	"fmt"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/runtime"
)

// Evaler pairs one Database snapshot with one ExecutionEngine for the
// duration of a single evaluation. Grounded on gapil/executor's
// Context{Database, ...} pairing of compile-time and runtime state.
type Evaler struct {
	db  *database.Database
	eng *runtime.ExecutionEngine
}

// NewEvaler returns an Evaler reading db and executing against eng.
func NewEvaler(db *database.Database, eng *runtime.ExecutionEngine) *Evaler {
	return &Evaler{db: db, eng: eng}
}

// EvalFragment evaluates fid's contribution to the program. A
// TopLevelStmt fragment evaluates its wrapped expression; a Function,
// TagDecl or AliasDecl fragment merely exists as a declaration — it
// evaluates to void, since calling a function happens through Call,
// not through evaluating its own fragment.
func (ev *Evaler) EvalFragment(fid fragment.FragId) (runtime.Value, error) {
	frag, ok := ev.db.Fragments[fid]
	if !ok {
		return runtime.Value{}, fmt.Errorf("eval: unknown fragment %s", fid)
	}
	top, ok := frag.Body.(*ast.TopLevelStmt)
	if !ok {
		return runtime.Void(), nil
	}
	v, ctrl, err := ev.EvalExpr(nil, top.Value)
	if err != nil {
		return runtime.Value{}, err
	}
	if ctrl.Kind == runtime.MayErrPropagate {
		return runtime.Value{}, fmt.Errorf("eval: unhandled '.?' propagation outside any function: %v", ctrl.Value)
	}
	return v, nil
}

// resolveFunction looks up name as a top-level function, returning its
// FragId and ast.Function body.
func (ev *Evaler) resolveFunction(name string) (fragment.FragId, *ast.Function, bool) {
	id, ok := ev.db.Symbols.Lookup(name)
	if !ok || id.Kind != fragment.Function {
		return fragment.FragId{}, nil, false
	}
	frag, ok := ev.db.Fragments[id]
	if !ok {
		return fragment.FragId{}, nil, false
	}
	fn, ok := frag.Body.(*ast.Function)
	return id, fn, ok
}

// resolveTagDecl looks up name as a tag type declaration.
func (ev *Evaler) resolveTagDecl(name string) (*ast.TagDecl, bool) {
	return ev.db.LookupTagDecl(name)
}
