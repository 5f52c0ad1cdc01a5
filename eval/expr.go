package eval

import (
	"fmt"
	"strconv"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/runtime"
)

// EvalExpr evaluates e against frame (nil for a top-level expression
// with no enclosing function). The returned Control is Normal unless
// evaluation reached a `return` inside a nested block (an if, block or
// is arm, which passes Returning outward) or a `.?` postfix applied to
// an error May, which yields MayErrPropagate; either way the enclosing
// block/call short-circuits (spec §4.C "may/.? postfix short-circuit").
func (ev *Evaler) EvalExpr(frame *runtime.StackFrame, e ast.Expr) (runtime.Value, runtime.Control, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		v, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: bad int literal %q: %w", n.Value, err)
		}
		return runtime.NewInt(v), runtime.NormalControl(), nil

	case *ast.FloatLit:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: bad float literal %q: %w", n.Value, err)
		}
		return runtime.NewFloat(v), runtime.NormalControl(), nil

	case *ast.BoolLit:
		return runtime.NewBool(n.Value), runtime.NormalControl(), nil

	case *ast.StringLit:
		return runtime.NewStr(n.Value), runtime.NormalControl(), nil

	case *ast.ArrayLit:
		elems := make([]runtime.Value, len(n.Elems))
		for i, el := range n.Elems {
			v, ctrl, err := ev.EvalExpr(frame, el)
			if err != nil || !ctrl.IsNormal() {
				return runtime.Value{}, ctrl, err
			}
			elems[i] = v
		}
		return runtime.NewListValue(runtime.NewList(elems)), runtime.NormalControl(), nil

	case *ast.Ident:
		if frame != nil {
			if v, ok := frame.Lookup(n.Name); ok {
				return v, runtime.NormalControl(), nil
			}
		}
		if fid, _, ok := ev.resolveFunction(n.Name); ok {
			return runtime.NewClosureValue(&runtime.Closure{Frag: fid, Env: nil}), runtime.NormalControl(), nil
		}
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: undefined name %q", n.Name)

	case *ast.BinaryOp:
		return ev.evalBinaryOp(frame, n)

	case *ast.UnaryOp:
		v, ctrl, err := ev.EvalExpr(frame, n.Operand)
		if err != nil || !ctrl.IsNormal() {
			return runtime.Value{}, ctrl, err
		}
		r, err := evalUnary(n.Op, v)
		return r, runtime.NormalControl(), err

	case *ast.Postfix:
		return ev.evalPostfix(frame, n)

	case *ast.Call:
		return ev.evalCall(frame, n)

	case *ast.Member:
		return ev.evalMember(frame, n)

	case *ast.Index:
		return ev.evalIndex(frame, n)

	case *ast.If:
		cond, ctrl, err := ev.EvalExpr(frame, n.Condition)
		if err != nil || !ctrl.IsNormal() {
			return runtime.Value{}, ctrl, err
		}
		if cond.Truthy() {
			return ev.EvalBlock(frame, n.Then)
		}
		if n.Else != nil {
			return ev.EvalBlock(frame, n.Else)
		}
		return runtime.Void(), runtime.NormalControl(), nil

	case *ast.BlockExpr:
		return ev.EvalBlock(frame, n.Block)

	case *ast.Is:
		return ev.evalIs(frame, n)

	default:
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: unsupported expression %T", e)
	}
}

func (ev *Evaler) evalBinaryOp(frame *runtime.StackFrame, n *ast.BinaryOp) (runtime.Value, runtime.Control, error) {
	l, ctrl, err := ev.EvalExpr(frame, n.LHS)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}

	if n.Op == "&&" && !l.Truthy() {
		return runtime.NewBool(false), runtime.NormalControl(), nil
	}
	if n.Op == "||" && l.Truthy() {
		return runtime.NewBool(true), runtime.NormalControl(), nil
	}

	r, ctrl, err := ev.EvalExpr(frame, n.RHS)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	if n.Op == "&&" || n.Op == "||" {
		return runtime.NewBool(r.Truthy()), runtime.NormalControl(), nil
	}

	v, err := evalBinary(n.Op, l, r)
	return v, runtime.NormalControl(), err
}

func (ev *Evaler) evalPostfix(frame *runtime.StackFrame, n *ast.Postfix) (runtime.Value, runtime.Control, error) {
	v, ctrl, err := ev.EvalExpr(frame, n.Operand)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	if n.Op != "?" {
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: unsupported postfix operator %q", n.Op)
	}
	if v.Kind != runtime.KindMay {
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: '.?' applied to non-may value of kind %s", v.Kind)
	}
	may := v.May()
	if may.Ok {
		return may.Val, runtime.NormalControl(), nil
	}
	return runtime.Void(), runtime.MayErrControl(may.Err), nil
}

func (ev *Evaler) evalMember(frame *runtime.StackFrame, n *ast.Member) (runtime.Value, runtime.Control, error) {
	// A bare `May.val`/`May.err` or tag-entry member (not applied as a
	// call) has no standalone runtime value in this grammar; it is only
	// meaningful as the target of a Call, handled in evalCall.
	if ident, ok := n.Object.(*ast.Ident); ok {
		if ident.Name == "May" {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: 'May.%s' must be called", n.Name.Value)
		}
		if _, ok := ev.resolveTagDecl(ident.Name); ok {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: tag entry '%s.%s' must be called", ident.Name, n.Name.Value)
		}
	}

	obj, ctrl, err := ev.EvalExpr(frame, n.Object)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	if obj.Kind != runtime.KindNode {
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: member access on non-node value of kind %s", obj.Kind)
	}
	v, ok := obj.Node().Get(n.Name.Value)
	if !ok {
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: node has no field %q", n.Name.Value)
	}
	return v, runtime.NormalControl(), nil
}

func (ev *Evaler) evalIndex(frame *runtime.StackFrame, n *ast.Index) (runtime.Value, runtime.Control, error) {
	obj, ctrl, err := ev.EvalExpr(frame, n.Object)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	idx, ctrl, err := ev.EvalExpr(frame, n.Index)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}

	switch obj.Kind {
	case runtime.KindList:
		i := int(idx.Int())
		v, ok := obj.List().Get(i)
		if !ok {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: list index %d out of range", i)
		}
		return v, runtime.NormalControl(), nil
	case runtime.KindMap:
		v, ok := obj.Map().Get(idx)
		if !ok {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: map has no entry for key")
		}
		return v, runtime.NormalControl(), nil
	default:
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: cannot index value of kind %s", obj.Kind)
	}
}
