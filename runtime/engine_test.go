package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionEnginePushPopDepth(t *testing.T) {
	e := NewExecutionEngine()
	assert.Equal(t, 0, e.Depth())
	assert.Nil(t, e.Current())

	id := testFragID("f")
	top := e.PushFrame(nil, id)
	assert.Equal(t, 1, e.Depth())
	assert.Same(t, top, e.Current())

	child := e.PushFrame(top, id)
	assert.Equal(t, 2, e.Depth())
	assert.Same(t, child, e.Current())

	e.PopFrame()
	assert.Equal(t, 1, e.Depth())
	assert.Same(t, top, e.Current())

	e.PopFrame()
	assert.Equal(t, 0, e.Depth())
	assert.Nil(t, e.Current())
}

func TestExecutionEnginePopFrameOnEmptyStackIsNoop(t *testing.T) {
	e := NewExecutionEngine()
	assert.NotPanics(t, func() { e.PopFrame() })
	assert.Equal(t, 0, e.Depth())
}

func TestExecutionEngineNextLambdaIDIsMonotonic(t *testing.T) {
	e := NewExecutionEngine()
	first := e.NextLambdaID()
	second := e.NextLambdaID()
	third := e.NextLambdaID()

	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
	assert.Equal(t, uint64(3), third)
}
