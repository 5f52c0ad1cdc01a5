package runtime

import (
	"sync"

	"github.com/auto-stack/autolang/fragment"
)

// ExecutionEngine is the transient runtime state an Evaler drives: the
// frame stack, call-stack depth, and the monotonic lambda-naming
// counter (spec §4.E). Reference-typed values (List, Map, Node,
// DynString, Closure) are independently heap-allocated Go values
// reached from frames rather than tracked by a separate heap table —
// Go's own garbage collector retires them once unreachable, so no
// explicit heap bookkeeping is needed (see DESIGN.md's stdlib
// justification for this simplification).
//
// An ExecutionEngine is exclusively owned by one evaluation thread and
// is never shared across sessions (§5).
type ExecutionEngine struct {
	mu sync.Mutex

	frames   []*StackFrame
	lambdaID uint64
}

// NewExecutionEngine returns an empty ExecutionEngine.
func NewExecutionEngine() *ExecutionEngine {
	return &ExecutionEngine{}
}

// PushFrame pushes a new frame lexically parented to parent (nil for a
// top-level call) and returns it. Every PushFrame must be paired with
// a PopFrame on all exit paths, including error propagation (§5:
// "every frame push pairs with a pop on all exit paths").
func (e *ExecutionEngine) PushFrame(parent *StackFrame, fragID fragment.FragId) *StackFrame {
	f := NewFrame(parent, fragID)
	e.mu.Lock()
	e.frames = append(e.frames, f)
	e.mu.Unlock()
	return f
}

// PopFrame discards the most recently pushed frame.
func (e *ExecutionEngine) PopFrame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.frames) == 0 {
		return
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth reports the current call-stack depth.
func (e *ExecutionEngine) Depth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.frames)
}

// Current returns the innermost active frame, or nil if none is
// pushed.
func (e *ExecutionEngine) Current() *StackFrame {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// NextLambdaID returns the next value of the monotonic counter used to
// give each closure a unique synthetic name.
func (e *ExecutionEngine) NextLambdaID() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lambdaID++
	return e.lambdaID
}
