package runtime

import (
	"fmt"
	"sync"

	"github.com/auto-stack/autolang/fragment"
)

// DynString is AutoLang's mutable `dstr`: a reference-typed, in-place
// growable string, as opposed to the immutable shared `str`.
type DynString struct {
	mu  sync.Mutex
	buf []byte
}

func NewDynString(s string) *DynString { return &DynString{buf: []byte(s)} }

func (d *DynString) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.buf)
}

func (d *DynString) Append(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = append(d.buf, s...)
}

func (d *DynString) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buf)
}

// List is AutoLang's reference-typed list value.
type List struct {
	mu    sync.Mutex
	elems []Value
}

func NewList(elems []Value) *List { return &List{elems: elems} }

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.elems)
}

func (l *List) Get(i int) (Value, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.elems) {
		return Value{}, false
	}
	return l.elems[i], true
}

func (l *List) Set(i int, v Value) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.elems) {
		return false
	}
	l.elems[i] = v
	return true
}

func (l *List) Append(v Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.elems = append(l.elems, v)
}

func (l *List) Snapshot() []Value {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Value, len(l.elems))
	copy(out, l.elems)
	return out
}

// mapKey normalises a Value into a comparable Go map key. AutoLang's
// minimal grammar only indexes maps by primitive keys, so a textual
// form of the primitive is sufficient; reference-typed keys are
// rejected by the caller before reaching here.
func mapKey(v Value) string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("i:%d", v.i)
	case KindUint:
		return fmt.Sprintf("u:%d", v.u)
	case KindFloat:
		return fmt.Sprintf("f:%v", v.f)
	case KindBool:
		return fmt.Sprintf("b:%v", v.b)
	case KindChar:
		return fmt.Sprintf("c:%v", v.c)
	case KindStr:
		return "s:" + v.s
	default:
		return fmt.Sprintf("?:%p", &v)
	}
}

// Map is AutoLang's reference-typed map value, keyed by primitive
// values.
type Map struct {
	mu   sync.Mutex
	data map[string]Value
	keys map[string]Value
}

func NewMap() *Map {
	return &Map{data: map[string]Value{}, keys: map[string]Value{}}
}

func (m *Map) Get(key Value) (Value, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[mapKey(key)]
	return v, ok
}

func (m *Map) Put(key, val Value) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := mapKey(key)
	m.data[k] = val
	m.keys[k] = key
}

func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *Map) Keys() []Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Value, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, k)
	}
	return out
}

// Node is AutoLang's hierarchical record value: a tag name plus a set
// of named fields, each itself a Value.
type Node struct {
	mu     sync.Mutex
	Tag    string
	fields map[string]Value
}

func NewNode(tag string) *Node {
	return &Node{Tag: tag, fields: map[string]Value{}}
}

func (n *Node) Get(field string) (Value, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.fields[field]
	return v, ok
}

func (n *Node) Set(field string, v Value) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fields[field] = v
}

// Closure is a first-class function reference: the FragId of the
// function fragment it closes over, plus the captured lexical
// environment at the point the closure was formed.
type Closure struct {
	Frag fragment.FragId
	Env  *StackFrame
}

// May is the runtime counterpart of the compile-time `may(T)` type: a
// tagged success/error union, produced by `May.val`/`May.err` and
// consumed by the `.?` postfix operator.
type May struct {
	Ok  bool
	Val Value
	Err Value
}
