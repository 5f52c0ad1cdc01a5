package eval

import (
	"fmt"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/runtime"
)

// EvalBlock executes block's statements in order within a fresh scope
// chained to frame (nil frame means a top-level/function-entry block),
// stopping early on a non-Normal Control (return, break, or a
// propagated may-error). Its value is its final ExprStmt's value, or
// void (spec: "the contents of a `{ }` pair ... the block's value is
// that expression's value; otherwise ... void").
func (ev *Evaler) EvalBlock(frame *runtime.StackFrame, block *ast.Block) (runtime.Value, runtime.Control, error) {
	scope := runtime.NewFrame(frame, frameFragID(frame))

	last := runtime.Void()
	for _, stmt := range block.Stmts {
		v, ctrl, err := ev.evalStmt(scope, stmt)
		if err != nil {
			return runtime.Value{}, runtime.NormalControl(), err
		}
		if !ctrl.IsNormal() {
			return runtime.Void(), ctrl, nil
		}
		last = v
	}
	return last, runtime.NormalControl(), nil
}

func frameFragID(frame *runtime.StackFrame) fragment.FragId {
	if frame == nil {
		return fragment.FragId{}
	}
	return frame.FragID()
}

func (ev *Evaler) evalStmt(frame *runtime.StackFrame, stmt ast.Stmt) (runtime.Value, runtime.Control, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		v, ctrl, err := ev.EvalExpr(frame, s.Value)
		if err != nil || !ctrl.IsNormal() {
			return runtime.Void(), ctrl, err
		}
		frame.Bind(s.Name.Value, v)
		return runtime.Void(), runtime.NormalControl(), nil

	case *ast.ReturnStmt:
		if s.Value == nil {
			return runtime.Void(), runtime.ReturnControl(runtime.Void()), nil
		}
		v, ctrl, err := ev.EvalExpr(frame, s.Value)
		if err != nil || !ctrl.IsNormal() {
			return runtime.Void(), ctrl, err
		}
		return runtime.Void(), runtime.ReturnControl(v), nil

	case *ast.ExprStmt:
		v, ctrl, err := ev.EvalExpr(frame, s.Value)
		if err != nil || !ctrl.IsNormal() {
			return runtime.Void(), ctrl, err
		}
		return v, runtime.NormalControl(), nil

	default:
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: unsupported statement %T", stmt)
	}
}
