package eval

import (
	"fmt"
	"strconv"

	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/runtime"
)

// evalIs evaluates AutoLang's `is` pattern-match expression. Arm
// exhaustiveness and unreachability are already checked at compile
// time (infer/pattern.go's W0004/W0005); a runtime match failure here
// means every arm's pattern genuinely failed to match, which a
// well-typed, exhaustively-checked program should never reach.
func (ev *Evaler) evalIs(frame *runtime.StackFrame, n *ast.Is) (runtime.Value, runtime.Control, error) {
	scrutinee, ctrl, err := ev.EvalExpr(frame, n.Scrutinee)
	if err != nil || !ctrl.IsNormal() {
		return runtime.Value{}, ctrl, err
	}

	for _, arm := range n.Arms {
		bound, ok := ev.matchPattern(frame, arm.Pattern, scrutinee)
		if !ok {
			continue
		}
		return ev.EvalExpr(bound, arm.Body)
	}
	return runtime.Value{}, runtime.NormalControl(), fmt.Errorf("eval: no arm matched scrutinee of kind %s", scrutinee.Kind)
}

// matchPattern reports whether pat matches scrutinee. On success it
// returns the frame any pattern-introduced bindings live in (a fresh
// child of frame, or frame itself for a wildcard with nothing to bind).
func (ev *Evaler) matchPattern(frame *runtime.StackFrame, pat ast.Pattern, scrutinee runtime.Value) (*runtime.StackFrame, bool) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return frame, true

	case *ast.BindPattern:
		child := runtime.NewFrame(frame, frameFragID(frame))
		child.Bind(p.Name.Value, scrutinee)
		return child, true

	case *ast.TagPattern:
		if scrutinee.Kind != runtime.KindNode {
			return nil, false
		}
		node := scrutinee.Node()
		want := p.Tag.Value + "." + p.Entry.Value
		if node.Tag != want {
			return nil, false
		}
		child := runtime.NewFrame(frame, frameFragID(frame))
		for i, b := range p.Bindings {
			if v, ok := node.Get(strconv.Itoa(i)); ok {
				child.Bind(b.Value, v)
			}
		}
		return child, true

	default:
		return nil, false
	}
}
