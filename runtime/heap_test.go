package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynString(t *testing.T) {
	d := NewDynString("foo")
	assert.Equal(t, "foo", d.String())
	assert.Equal(t, 3, d.Len())
	d.Append("bar")
	assert.Equal(t, "foobar", d.String())
	assert.Equal(t, 6, d.Len())
}

func TestListGetSetBounds(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2)})
	v, ok := l.Get(0)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	_, ok = l.Get(5)
	assert.False(t, ok)

	assert.True(t, l.Set(1, NewInt(99)))
	v, _ = l.Get(1)
	assert.Equal(t, int64(99), v.Int())

	assert.False(t, l.Set(5, NewInt(0)))
}

func TestListAppendAndSnapshotIsolation(t *testing.T) {
	l := NewList(nil)
	l.Append(NewInt(1))
	l.Append(NewInt(2))
	assert.Equal(t, 2, l.Len())

	snap := l.Snapshot()
	l.Append(NewInt(3))
	assert.Len(t, snap, 2, "a taken snapshot must not grow with the live list")
	assert.Equal(t, 3, l.Len())
}

func TestMapPutGetAndKeys(t *testing.T) {
	m := NewMap()
	m.Put(NewStr("a"), NewInt(1))
	m.Put(NewInt(2), NewStr("two"))

	v, ok := m.Get(NewStr("a"))
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	v, ok = m.Get(NewInt(2))
	assert.True(t, ok)
	assert.Equal(t, "two", v.Str())

	_, ok = m.Get(NewStr("missing"))
	assert.False(t, ok)

	assert.Equal(t, 2, m.Len())
	assert.Len(t, m.Keys(), 2)
}

func TestMapPutOverwritesSameKey(t *testing.T) {
	m := NewMap()
	m.Put(NewInt(1), NewStr("first"))
	m.Put(NewInt(1), NewStr("second"))

	assert.Equal(t, 1, m.Len())
	v, _ := m.Get(NewInt(1))
	assert.Equal(t, "second", v.Str())
}

func TestNodeGetSet(t *testing.T) {
	n := NewNode("Point")
	_, ok := n.Get("x")
	assert.False(t, ok)

	n.Set("x", NewInt(3))
	v, ok := n.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v.Int())
	assert.Equal(t, "Point", n.Tag)
}
