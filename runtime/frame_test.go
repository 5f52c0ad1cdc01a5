package runtime

import (
	"testing"

	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/hash"
	"github.com/stretchr/testify/assert"
)

func testFragID(name string) fragment.FragId {
	return fragment.FragId{File: hash.FileId("f.auto"), Kind: fragment.Function, Name: name}
}

func TestFrameBindAndLookup(t *testing.T) {
	f := NewFrame(nil, testFragID("f"))
	f.Bind("x", NewInt(1))
	v, ok := f.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	_, ok = f.Lookup("missing")
	assert.False(t, ok)
}

func TestFrameLookupWalksParentChain(t *testing.T) {
	parent := NewFrame(nil, testFragID("f"))
	parent.Bind("x", NewInt(1))
	child := NewFrame(parent, testFragID("f"))

	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Int())
}

func TestFrameBindShadowsParent(t *testing.T) {
	parent := NewFrame(nil, testFragID("f"))
	parent.Bind("x", NewInt(1))
	child := NewFrame(parent, testFragID("f"))
	child.Bind("x", NewInt(2))

	v, _ := child.Lookup("x")
	assert.Equal(t, int64(2), v.Int())
	pv, _ := parent.Lookup("x")
	assert.Equal(t, int64(1), pv.Int(), "shadowing in a child frame must not mutate the parent's binding")
}

func TestFrameAssignUpdatesNearestEnclosingBinding(t *testing.T) {
	parent := NewFrame(nil, testFragID("f"))
	parent.Bind("x", NewInt(1))
	child := NewFrame(parent, testFragID("f"))

	ok := child.Assign("x", NewInt(9))
	assert.True(t, ok)
	v, _ := parent.Lookup("x")
	assert.Equal(t, int64(9), v.Int())
}

func TestFrameAssignWithoutPriorBindingFails(t *testing.T) {
	f := NewFrame(nil, testFragID("f"))
	assert.False(t, f.Assign("never-declared", NewInt(1)))
}

func TestFrameFragIDAndParentAccessors(t *testing.T) {
	id := testFragID("f")
	parent := NewFrame(nil, id)
	child := NewFrame(parent, id)

	assert.Equal(t, id, child.FragID())
	assert.Same(t, parent, child.Parent())
	assert.Nil(t, parent.Parent())
}
