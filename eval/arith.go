package eval

import (
	"fmt"

	"github.com/auto-stack/autolang/runtime"
)

// evalBinary applies a checked arithmetic, comparison or string-concat
// operator to two already-evaluated operands. Type inference has
// already rejected ill-typed operands ahead of evaluation, so this
// assumes l and r share a common numeric/string kind.
func evalBinary(op string, l, r runtime.Value) (runtime.Value, error) {
	switch op {
	case "+", "-", "*", "/", "%":
		return arith(op, l, r)
	case "==", "!=", "<", "<=", ">", ">=":
		return compare(op, l, r)
	default:
		return runtime.Value{}, fmt.Errorf("eval: unsupported operator %q", op)
	}
}

func evalUnary(op string, v runtime.Value) (runtime.Value, error) {
	switch op {
	case "-":
		switch v.Kind {
		case runtime.KindInt:
			return runtime.NewInt(-v.Int()), nil
		case runtime.KindFloat:
			return runtime.NewFloat(-v.Float()), nil
		default:
			return runtime.Value{}, fmt.Errorf("eval: unary '-' on non-numeric value of kind %s", v.Kind)
		}
	case "!":
		if v.Kind != runtime.KindBool {
			return runtime.Value{}, fmt.Errorf("eval: unary '!' on non-bool value of kind %s", v.Kind)
		}
		return runtime.NewBool(!v.Bool()), nil
	default:
		return runtime.Value{}, fmt.Errorf("eval: unsupported unary operator %q", op)
	}
}

func asFloat(v runtime.Value) (float64, bool) {
	switch v.Kind {
	case runtime.KindFloat:
		return v.Float(), true
	case runtime.KindInt:
		return float64(v.Int()), true
	case runtime.KindUint:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}

func arith(op string, l, r runtime.Value) (runtime.Value, error) {
	if l.Kind == runtime.KindStr && r.Kind == runtime.KindStr && op == "+" {
		return runtime.NewStr(l.Str() + r.Str()), nil
	}
	if l.Kind == runtime.KindFloat || r.Kind == runtime.KindFloat {
		a, aok := asFloat(l)
		b, bok := asFloat(r)
		if !aok || !bok {
			return runtime.Value{}, fmt.Errorf("eval: operand of kind %s/%s not numeric", l.Kind, r.Kind)
		}
		switch op {
		case "+":
			return runtime.NewFloat(a + b), nil
		case "-":
			return runtime.NewFloat(a - b), nil
		case "*":
			return runtime.NewFloat(a * b), nil
		case "/":
			// IEEE-754 division: a/0 yields +/-Inf, 0/0 yields NaN,
			// never a runtime error (spec Boundary Behaviours).
			return runtime.NewFloat(a / b), nil
		case "%":
			return runtime.Value{}, fmt.Errorf("eval: '%%' is not defined for float operands")
		}
	}
	if l.Kind == runtime.KindUint || r.Kind == runtime.KindUint {
		toUint := func(v runtime.Value) uint64 {
			if v.Kind == runtime.KindUint {
				return v.Uint()
			}
			return uint64(v.Int())
		}
		a, b := toUint(l), toUint(r)
		switch op {
		case "+":
			return runtime.NewUint(a + b), nil
		case "-":
			return runtime.NewUint(a - b), nil
		case "*":
			return runtime.NewUint(a * b), nil
		case "/":
			if b == 0 {
				return runtime.Value{}, fmt.Errorf("eval: division by zero")
			}
			return runtime.NewUint(a / b), nil
		case "%":
			if b == 0 {
				return runtime.Value{}, fmt.Errorf("eval: division by zero")
			}
			return runtime.NewUint(a % b), nil
		}
	}

	a, b := l.Int(), r.Int()
	switch op {
	case "+":
		return runtime.NewInt(a + b), nil
	case "-":
		return runtime.NewInt(a - b), nil
	case "*":
		return runtime.NewInt(a * b), nil
	case "/":
		if b == 0 {
			return runtime.Value{}, fmt.Errorf("eval: division by zero")
		}
		return runtime.NewInt(a / b), nil
	case "%":
		if b == 0 {
			return runtime.Value{}, fmt.Errorf("eval: division by zero")
		}
		return runtime.NewInt(a % b), nil
	}
	return runtime.Value{}, fmt.Errorf("eval: unsupported operator %q", op)
}

func compare(op string, l, r runtime.Value) (runtime.Value, error) {
	if l.Kind == runtime.KindBool && r.Kind == runtime.KindBool {
		switch op {
		case "==":
			return runtime.NewBool(l.Bool() == r.Bool()), nil
		case "!=":
			return runtime.NewBool(l.Bool() != r.Bool()), nil
		default:
			return runtime.Value{}, fmt.Errorf("eval: %q not defined for bool operands", op)
		}
	}
	if l.Kind == runtime.KindStr && r.Kind == runtime.KindStr {
		switch op {
		case "==":
			return runtime.NewBool(l.Str() == r.Str()), nil
		case "!=":
			return runtime.NewBool(l.Str() != r.Str()), nil
		case "<":
			return runtime.NewBool(l.Str() < r.Str()), nil
		case "<=":
			return runtime.NewBool(l.Str() <= r.Str()), nil
		case ">":
			return runtime.NewBool(l.Str() > r.Str()), nil
		case ">=":
			return runtime.NewBool(l.Str() >= r.Str()), nil
		}
	}

	a, aok := asFloat(l)
	b, bok := asFloat(r)
	if !aok || !bok {
		return runtime.Value{}, fmt.Errorf("eval: cannot compare values of kind %s and %s", l.Kind, r.Kind)
	}
	switch op {
	case "==":
		return runtime.NewBool(a == b), nil
	case "!=":
		return runtime.NewBool(a != b), nil
	case "<":
		return runtime.NewBool(a < b), nil
	case "<=":
		return runtime.NewBool(a <= b), nil
	case ">":
		return runtime.NewBool(a > b), nil
	case ">=":
		return runtime.NewBool(a >= b), nil
	default:
		return runtime.Value{}, fmt.Errorf("eval: unsupported comparison %q", op)
	}
}
