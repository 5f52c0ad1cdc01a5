package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueConstructorsAndAccessors(t *testing.T) {
	assert.Equal(t, int64(42), NewInt(42).Int())
	assert.Equal(t, uint64(7), NewUint(7).Uint())
	assert.Equal(t, 3.5, NewFloat(3.5).Float())
	assert.True(t, NewBool(true).Bool())
	assert.Equal(t, 'x', NewChar('x').Char())
	assert.Equal(t, "hi", NewStr("hi").Str())
}

func TestVoidIsVoid(t *testing.T) {
	assert.True(t, Void().IsVoid())
	assert.False(t, NewInt(0).IsVoid())
}

func TestTruthy(t *testing.T) {
	assert.False(t, NewBool(false).Truthy())
	assert.True(t, NewBool(true).Truthy())
	assert.False(t, Void().Truthy())
	assert.True(t, NewInt(0).Truthy(), "only bool(false) and void are falsy")
	assert.True(t, NewStr("").Truthy())
}

func TestValueStringRendersPrimitives(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "hi", NewStr("hi").String())
	assert.Equal(t, "void", Void().String())
}

func TestValueStringRendersList(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	assert.Equal(t, "[1, 2, 3]", NewListValue(l).String())
}

func TestValueStringRendersMay(t *testing.T) {
	ok := NewMayValue(&May{Ok: true, Val: NewInt(1)})
	assert.Equal(t, "may.val(1)", ok.String())

	bad := NewMayValue(&May{Ok: false, Err: NewStr("boom")})
	assert.Equal(t, "may.err(boom)", bad.String())
}

func TestValueStringRendersNode(t *testing.T) {
	n := NewNode("Opt.some")
	n.Set("0", NewInt(9))
	assert.Equal(t, "Opt.some(9)", NewNodeValue(n).String())

	bare := NewNode("Opt.none")
	assert.Equal(t, "Opt.none", NewNodeValue(bare).String())
}
