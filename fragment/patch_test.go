package fragment

import (
	"testing"

	"github.com/auto-stack/autolang/hash"
	"github.com/stretchr/testify/assert"
)

func frag(name string, l3 hash.Digest) *Fragment {
	id := FragId{Kind: Function, Name: name}
	return &Fragment{ID: id, L3: l3}
}

func TestDiffEmptyWhenIdentical(t *testing.T) {
	f := frag("a", hash.OfString("a"))
	before := map[FragId]*Fragment{f.ID: f}
	after := map[FragId]*Fragment{f.ID: f}

	p := Diff(before, after)
	assert.True(t, p.Empty())
}

func TestDiffDetectsAddedRemovedUpdated(t *testing.T) {
	a := frag("a", hash.OfString("a-v1"))
	b := frag("b", hash.OfString("b-v1"))
	aUpdated := &Fragment{ID: a.ID, L3: hash.OfString("a-v2")}

	before := map[FragId]*Fragment{a.ID: a, b.ID: b}
	after := map[FragId]*Fragment{a.ID: aUpdated}

	p := Diff(before, after)
	assert.False(t, p.Empty())
	assert.ElementsMatch(t, []FragId{a.ID}, p.Updated)
	assert.ElementsMatch(t, []FragId{b.ID}, p.Removed)
	assert.Empty(t, p.Added)
	assert.Same(t, aUpdated, p.Fragments[a.ID])
}

func TestDiffAddedFragment(t *testing.T) {
	c := frag("c", hash.OfString("c-v1"))
	p := Diff(nil, map[FragId]*Fragment{c.ID: c})
	assert.ElementsMatch(t, []FragId{c.ID}, p.Added)
	assert.Len(t, p.Relocations, 1)
	assert.Equal(t, FragId{}, p.Relocations[0].From)
	assert.Equal(t, c.ID, p.Relocations[0].To)
}
