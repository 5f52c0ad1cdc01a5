package eval

import (
	"context"
	"math"
	"testing"

	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/runtime"
	"github.com/auto-stack/autolang/session"
	"github.com/stretchr/testify/require"
)

// newEvaler compiles src in a fresh session and returns an Evaler over
// a snapshot of the resulting Database, paired with a fresh
// ExecutionEngine — the same composition session.ReplSession uses.
func newEvaler(t *testing.T, src string) *Evaler {
	t.Helper()
	s := session.NewSession(20)
	res := s.CompileSource(context.Background(), "t.auto", src)
	require.Empty(t, res.ParseErrors.Errors)
	return NewEvaler(s.Snapshot(), runtime.NewExecutionEngine())
}

func run(t *testing.T, src string) runtime.Value {
	t.Helper()
	ev := newEvaler(t, src)
	var last runtime.Value
	for id := range ev.db.Fragments {
		v, err := ev.EvalFragment(id)
		require.NoError(t, err)
		if !v.IsVoid() {
			last = v
		}
	}
	return last
}

func TestEvalFragmentTopLevelExprLiteral(t *testing.T) {
	v := run(t, `1 + 2`)
	require.Equal(t, int64(3), v.Int())
}

func TestEvalFragmentFunctionDeclEvaluatesToVoid(t *testing.T) {
	ev := newEvaler(t, `fn f() int { return 1 }`)
	var id = firstFragID(t, ev)
	v, err := ev.EvalFragment(id)
	require.NoError(t, err)
	require.True(t, v.IsVoid())
}

func firstFragID(t *testing.T, ev *Evaler) fragment.FragId {
	t.Helper()
	for k := range ev.db.Fragments {
		return k
	}
	t.Fatal("no fragments")
	return fragment.FragId{}
}

func TestCallFunctionSimpleArithmetic(t *testing.T) {
	ev := newEvaler(t, `fn add(a int, b int) int { return a + b }`)
	fid, fn, ok := ev.resolveFunction("add")
	require.True(t, ok)
	require.NotNil(t, fn)
	v, err := ev.CallFunction(fid, nil, []runtime.Value{runtime.NewInt(2), runtime.NewInt(3)})
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int())
}

func TestCallFunctionMayAutoWrapsBareReturn(t *testing.T) {
	ev := newEvaler(t, `fn f() ?int { return 1 }`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	require.Equal(t, runtime.KindMay, v.Kind)
	may := v.May()
	require.True(t, may.Ok)
	require.Equal(t, int64(1), may.Val.Int())
}

func TestCallFunctionMayPropagationShortCircuitsToErr(t *testing.T) {
	ev := newEvaler(t, `
fn inner() ?int { return May.err("boom") }
fn outer() ?int { return inner().? }
`)
	fid, _, ok := ev.resolveFunction("outer")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	may := v.May()
	require.False(t, may.Ok)
	require.Equal(t, "boom", may.Err.Str())
}

func TestDivisionByZeroErrors(t *testing.T) {
	ev := newEvaler(t, `fn f() int { return 1 / 0 }`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	_, err := ev.CallFunction(fid, nil, nil)
	require.Error(t, err)
}

func TestFloatDivisionByZeroYieldsInfNotError(t *testing.T) {
	ev := newEvaler(t, `fn f() float { return 1.0 / 0.0 }`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	require.True(t, math.IsInf(v.Float(), 1))
}

func TestFloatZeroDividedByZeroYieldsNaN(t *testing.T) {
	ev := newEvaler(t, `fn f() float { return 0.0 / 0.0 }`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v.Float()))
}

func TestTagConstructorAndPatternMatch(t *testing.T) {
	ev := newEvaler(t, `
tag Opt { some(int), none }
fn f() int {
  let o = Opt.some(7)
  return is o {
    Opt.some(x) => x,
    Opt.none => 0,
  }
}
`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(7), v.Int())
}

func TestIfWithoutElseFallsThroughWhenConditionFalse(t *testing.T) {
	ev := newEvaler(t, `fn f() int { if false { return 1 } return 2 }`)
	fid, _, ok := ev.resolveFunction("f")
	require.True(t, ok)
	v, err := ev.CallFunction(fid, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Int())
}

func TestClosureValueIsCallable(t *testing.T) {
	ev := newEvaler(t, `fn double(x int) int { return x * 2 }`)
	fid, _, ok := ev.resolveFunction("double")
	require.True(t, ok)
	closureVal := runtime.NewClosureValue(&runtime.Closure{Frag: fid, Env: nil})
	v, err := ev.Call(closureVal, []runtime.Value{runtime.NewInt(21)})
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int())
}
