package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfStringDeterministic(t *testing.T) {
	a := OfString("hello", "world")
	b := OfString("hello", "world")
	assert.Equal(t, a, b)
	assert.False(t, a.IsZero())
}

func TestOfStringSensitiveToContent(t *testing.T) {
	a := OfString("fn foo()")
	b := OfString("fn bar()")
	assert.NotEqual(t, a, b)
}

func TestOfStringHashesConcatenationNotArgumentBoundaries(t *testing.T) {
	// "ab","c" and "abc" collide: each argument is fed as a separate
	// Write with no separator or length prefix, so only the
	// concatenated bytes reach the hasher.
	a := OfString("ab", "c")
	b := OfString("abc")
	assert.Equal(t, a, b, "Of/OfString hash the concatenation of all arguments, not a boundary-sensitive encoding")
}

func TestCombineDeterministicAndOrderSensitive(t *testing.T) {
	l1 := OfString("body")
	l2 := OfString("sig")
	c1 := Combine(l1, l2)
	c2 := Combine(l1, l2)
	assert.Equal(t, c1, c2)

	swapped := Combine(l2, l1)
	assert.NotEqual(t, c1, swapped)
}

func TestDigestStringIsHex(t *testing.T) {
	d := OfString("x")
	s := d.String()
	assert.Len(t, s, Size*2)
}

func TestZeroDigestIsZero(t *testing.T) {
	var d Digest
	assert.True(t, d.IsZero())
}
