package eval

import (
	"fmt"
	"strconv"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/runtime"
)

// evalCall dispatches `target(args)` to one of three forms: the
// `May.val`/`May.err` built-in constructors, a tag-entry constructor
// (e.g. `Opt.some(x)`), or an ordinary call — of a named top-level
// function or of a closure value (spec §4.C call-inference special
// cases, mirrored here at evaluation time).
func (ev *Evaler) evalCall(frame *runtime.StackFrame, n *ast.Call) (runtime.Value, runtime.Control, error) {
	if m, ok := n.Target.(*ast.Member); ok {
		if ident, ok := m.Object.(*ast.Ident); ok {
			if ident.Name == "May" {
				return ev.evalMayConstructor(frame, m.Name.Value, n.Arguments)
			}
			if decl, ok := ev.resolveTagDecl(ident.Name); ok {
				return ev.evalTagConstructor(frame, decl, ident.Name, m.Name.Value, n.Arguments)
			}
		}
	}

	args, ctrl, err := ev.evalArgs(frame, n.Arguments)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}

	if ident, ok := n.Target.(*ast.Ident); ok {
		fid, _, ok := ev.resolveFunction(ident.Name)
		if !ok {
			return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: undefined function %q", ident.Name)
		}
		v, err := ev.CallFunction(fid, nil, args)
		return v, runtime.NormalControl(), err
	}

	fnVal, ctrl, err := ev.EvalExpr(frame, n.Target)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	v, err := ev.Call(fnVal, args)
	return v, runtime.NormalControl(), err
}

func (ev *Evaler) evalArgs(frame *runtime.StackFrame, exprs []ast.Expr) ([]runtime.Value, runtime.Control, error) {
	out := make([]runtime.Value, len(exprs))
	for i, e := range exprs {
		v, ctrl, err := ev.EvalExpr(frame, e)
		if err != nil || !ctrl.IsNormal() {
			return nil, ctrl, err
		}
		out[i] = v
	}
	return out, runtime.NormalControl(), nil
}

func (ev *Evaler) evalMayConstructor(frame *runtime.StackFrame, ctor string, argExprs []ast.Expr) (runtime.Value, runtime.Control, error) {
	args, ctrl, err := ev.evalArgs(frame, argExprs)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}
	var payload runtime.Value
	if len(args) > 0 {
		payload = args[0]
	} else {
		payload = runtime.Void()
	}
	switch ctor {
	case "val":
		return runtime.NewMayValue(&runtime.May{Ok: true, Val: payload}), runtime.NormalControl(), nil
	case "err":
		return runtime.NewMayValue(&runtime.May{Ok: false, Err: payload}), runtime.NormalControl(), nil
	default:
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: unknown May constructor %q", ctor)
	}
}

// evalTagConstructor builds the Node value representing one entry of a
// tag type, e.g. `Opt.some(x)`, with positional payload fields keyed
// "0", "1", ... for evalIs's TagPattern matching to read back.
func (ev *Evaler) evalTagConstructor(frame *runtime.StackFrame, decl *ast.TagDecl, tagName, entry string, argExprs []ast.Expr) (runtime.Value, runtime.Control, error) {
	found := false
	for _, e := range decl.Entries {
		if e.Name.Value == entry {
			found = true
			break
		}
	}
	if !found {
		return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: %s has no entry %q", tagName, entry)
	}

	args, ctrl, err := ev.evalArgs(frame, argExprs)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}

	node := runtime.NewNode(tagName + "." + entry)
	for i, v := range args {
		node.Set(strconv.Itoa(i), v)
	}
	return runtime.NewNodeValue(node), runtime.NormalControl(), nil
}

// CallFunction invokes the Function fragment fid with args. env is the
// closure's captured lexical environment (nil for an ordinary
// top-level function), matching spec §4.E's call(fn_value, args) ->
// Value.
func (ev *Evaler) CallFunction(fid fragment.FragId, env *runtime.StackFrame, args []runtime.Value) (runtime.Value, error) {
	frag, ok := ev.db.Fragments[fid]
	if !ok {
		return runtime.Value{}, fmt.Errorf("eval: unknown function %s", fid)
	}
	fn, ok := frag.Body.(*ast.Function)
	if !ok {
		return runtime.Value{}, fmt.Errorf("eval: %s is not a function", fid)
	}
	if len(args) != len(fn.Parameters) {
		return runtime.Value{}, fmt.Errorf("eval: %s expects %d argument(s), got %d", fn.Name.Value, len(fn.Parameters), len(args))
	}

	frame := ev.eng.PushFrame(env, fid)
	defer ev.eng.PopFrame()
	for i, p := range fn.Parameters {
		frame.Bind(p.Name.Value, args[i])
	}

	val, ctrl, err := ev.EvalBlock(frame, fn.Body)
	if err != nil {
		return runtime.Value{}, err
	}

	declaresMay := fn.ReturnType != nil && fn.ReturnType.May

	switch ctrl.Kind {
	case runtime.Returning:
		val = ctrl.Value
	case runtime.MayErrPropagate:
		return runtime.NewMayValue(&runtime.May{Ok: false, Err: ctrl.Value}), nil
	}

	if declaresMay && val.Kind != runtime.KindMay {
		val = runtime.NewMayValue(&runtime.May{Ok: true, Val: val})
	}
	return val, nil
}

// Call resolves fn (must be a Closure value) and invokes it with args.
func (ev *Evaler) Call(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if fn.Kind != runtime.KindClosure {
		return runtime.Value{}, fmt.Errorf("eval: value of kind %s is not callable", fn.Kind)
	}
	c := fn.Closure()
	return ev.CallFunction(c.Frag, c.Env, args)
}
