package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlConstructorsSetKind(t *testing.T) {
	assert.Equal(t, Normal, NormalControl().Kind)
	assert.Equal(t, Breaking, BreakControl().Kind)

	ret := ReturnControl(NewInt(5))
	assert.Equal(t, Returning, ret.Kind)
	assert.Equal(t, int64(5), ret.Value.Int())

	errC := MayErrControl(NewStr("boom"))
	assert.Equal(t, MayErrPropagate, errC.Kind)
	assert.Equal(t, "boom", errC.Value.Str())
}

func TestControlIsNormal(t *testing.T) {
	assert.True(t, NormalControl().IsNormal())
	assert.False(t, ReturnControl(Void()).IsNormal())
	assert.False(t, BreakControl().IsNormal())
	assert.False(t, MayErrControl(Void()).IsNormal())
}
