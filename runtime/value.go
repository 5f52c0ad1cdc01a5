// Package runtime implements the ExecutionEngine: the transient
// runtime-value and frame store an Evaler drives (spec §4.E). It holds
// no compile-time state and is never shared across sessions — the
// Evaler bridges it to a Database snapshot.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies which field of a Value is currently active. Runtime
// values include primitives, shared immutable strings, mutable
// "dynamic" strings, lists, maps, hierarchical nodes, and first-class
// function references (spec §4.E).
type Kind int

const (
	KindVoid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindChar
	KindStr
	KindDStr
	KindList
	KindMap
	KindNode
	KindClosure
	KindMay
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindStr:
		return "str"
	case KindDStr:
		return "dstr"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindNode:
		return "node"
	case KindClosure:
		return "closure"
	case KindMay:
		return "may"
	default:
		return "?"
	}
}

// Value is one dynamic runtime value. Primitive kinds (Int, Uint,
// Float, Bool, Char, Str) are carried inline and copy by value; the
// remaining kinds hold a pointer to a heap-allocated reference value,
// so assignment and closure capture alias rather than copy — matching
// AutoLang's reference semantics for lists/maps/nodes/dstrings.
type Value struct {
	Kind Kind

	i int64
	u uint64
	f float64
	b bool
	c rune
	s string

	dstr    *DynString
	list    *List
	mp      *Map
	node    *Node
	closure *Closure
	may     *May
}

func Void() Value              { return Value{Kind: KindVoid} }
func NewInt(v int64) Value     { return Value{Kind: KindInt, i: v} }
func NewUint(v uint64) Value   { return Value{Kind: KindUint, u: v} }
func NewFloat(v float64) Value { return Value{Kind: KindFloat, f: v} }
func NewBool(v bool) Value     { return Value{Kind: KindBool, b: v} }
func NewChar(v rune) Value     { return Value{Kind: KindChar, c: v} }
func NewStr(v string) Value    { return Value{Kind: KindStr, s: v} }

func NewDStrValue(v *DynString) Value   { return Value{Kind: KindDStr, dstr: v} }
func NewListValue(v *List) Value        { return Value{Kind: KindList, list: v} }
func NewMapValue(v *Map) Value           { return Value{Kind: KindMap, mp: v} }
func NewNodeValue(v *Node) Value         { return Value{Kind: KindNode, node: v} }
func NewClosureValue(v *Closure) Value   { return Value{Kind: KindClosure, closure: v} }
func NewMayValue(v *May) Value           { return Value{Kind: KindMay, may: v} }

func (v Value) Int() int64        { return v.i }
func (v Value) Uint() uint64      { return v.u }
func (v Value) Float() float64    { return v.f }
func (v Value) Bool() bool        { return v.b }
func (v Value) Char() rune        { return v.c }
func (v Value) Str() string       { return v.s }
func (v Value) DStr() *DynString  { return v.dstr }
func (v Value) List() *List       { return v.list }
func (v Value) Map() *Map         { return v.mp }
func (v Value) Node() *Node       { return v.node }
func (v Value) Closure() *Closure { return v.closure }
func (v Value) May() *May         { return v.may }

func (v Value) IsVoid() bool { return v.Kind == KindVoid }

// Truthy reports v's use as an `if`/`&&`/`||` condition operand.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindBool:
		return v.b
	case KindVoid:
		return false
	default:
		return true
	}
}

// String renders v the way a REPL or script-mode `print` would: the
// representation a user types back, not a debug dump.
func (v Value) String() string {
	switch v.Kind {
	case KindVoid:
		return "void"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindChar:
		return string(v.c)
	case KindStr:
		return v.s
	case KindDStr:
		return v.dstr.String()
	case KindList:
		elems := v.list.Snapshot()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := v.mp.Keys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			val, _ := v.mp.Get(k)
			parts = append(parts, fmt.Sprintf("%s: %s", k, val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindNode:
		return nodeString(v.node)
	case KindClosure:
		return fmt.Sprintf("<function %s>", v.closure.Frag.Name)
	case KindMay:
		if v.may.Ok {
			return fmt.Sprintf("may.val(%s)", v.may.Val)
		}
		return fmt.Sprintf("may.err(%s)", v.may.Err)
	default:
		return "?"
	}
}

func nodeString(n *Node) string {
	if len(n.fields) == 0 {
		return n.Tag
	}
	parts := make([]string, 0, len(n.fields))
	for i := 0; ; i++ {
		v, ok := n.Get(strconv.Itoa(i))
		if !ok {
			break
		}
		parts = append(parts, v.String())
	}
	return n.Tag + "(" + strings.Join(parts, ", ") + ")"
}
