package runtime

import "github.com/auto-stack/autolang/fragment"

// Sid is a compile-time symbol identifier used as a frame variable
// key. The minimal grammar has no separate symbol-interning pass ahead
// of evaluation, so a binding's own source name doubles as its Sid —
// a deliberate simplification of the spec's `Sid -> Symbol` table
// (see DESIGN.md).
type Sid = string

// StackFrame is one function activation: a flat Sid->Value map plus a
// lexical parent pointer, the runtime counterpart of infer.Context's
// scope stack (spec §4.E: "each a Sid -> Value map plus its lexical
// parent pointer").
type StackFrame struct {
	vars   map[Sid]Value
	parent *StackFrame
	fragID fragment.FragId
}

// NewFrame returns a frame lexically parented to parent (nil for a
// top-level activation), owned by the fragment fragID is evaluating.
func NewFrame(parent *StackFrame, fragID fragment.FragId) *StackFrame {
	return &StackFrame{vars: map[Sid]Value{}, parent: parent, fragID: fragID}
}

// FragID returns the fragment this frame is executing.
func (f *StackFrame) FragID() fragment.FragId { return f.fragID }

// Parent returns f's lexical parent, or nil at the top of a call.
func (f *StackFrame) Parent() *StackFrame { return f.parent }

// Bind introduces sid in this frame's own scope, shadowing any parent
// binding of the same name.
func (f *StackFrame) Bind(sid Sid, v Value) { f.vars[sid] = v }

// Lookup searches this frame and its lexical ancestors for sid.
func (f *StackFrame) Lookup(sid Sid) (Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[sid]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Assign updates sid in the nearest enclosing frame that already binds
// it; it never implicitly declares a new binding. It reports whether
// an existing binding was found.
func (f *StackFrame) Assign(sid Sid, v Value) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[sid]; ok {
			cur.vars[sid] = v
			return true
		}
	}
	return false
}
