package fragment

import (
	"testing"

	"github.com/auto-stack/autolang/hash"
	"github.com/auto-stack/autolang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noResolve(string) (FragId, bool) { return FragId{}, false }

func mustIndex(t *testing.T, src string, old map[FragId]*Fragment, resolve Resolve) IndexResult {
	t.Helper()
	file, errs := parser.Parse(src, 20)
	require.Empty(t, errs.Errors, "fixture must parse cleanly")
	id := hash.FileId(hash.OfString("file:", "t.auto"))
	if resolve == nil {
		resolve = noResolve
	}
	return IndexFile(id, src, file, old, resolve)
}

func TestIndexFileFirstPassMarksEverythingAddedAndDirty(t *testing.T) {
	res := mustIndex(t, `fn add(a int, b int) int { return a + b }`, nil, nil)
	require.Len(t, res.Fragments, 1)

	var id FragId
	for k := range res.Fragments {
		id = k
	}
	assert.Equal(t, Function, id.Kind)
	assert.Equal(t, "add", id.Name)
	assert.True(t, res.Added[id])
	assert.True(t, res.Dirty[id])
	assert.True(t, res.SigChanged[id])
}

func TestIndexFileBodyOnlyEditIsDirtyButNotSigChanged(t *testing.T) {
	before := mustIndex(t, `fn f(a int) int { return a }`, nil, nil)
	after := mustIndex(t, `fn f(a int) int { return a + 1 }`, before.Fragments, nil)

	var id FragId
	for k := range after.Fragments {
		id = k
	}
	assert.True(t, after.Dirty[id], "body text changed so L1 differs")
	assert.False(t, after.SigChanged[id], "signature (params/return) is unchanged")
	assert.False(t, after.Added[id])
}

func TestIndexFileSignatureEditIsSigChanged(t *testing.T) {
	before := mustIndex(t, `fn f(a int) int { return a }`, nil, nil)
	after := mustIndex(t, `fn f(a int, b int) int { return a }`, before.Fragments, nil)

	var id FragId
	for k := range after.Fragments {
		id = k
	}
	assert.True(t, after.SigChanged[id])
	assert.True(t, after.Dirty[id])
}

func TestIndexFileUnchangedSourceIsNeitherDirtyNorAdded(t *testing.T) {
	src := `fn f(a int) int { return a }`
	before := mustIndex(t, src, nil, nil)
	after := mustIndex(t, src, before.Fragments, nil)

	var id FragId
	for k := range after.Fragments {
		id = k
	}
	assert.False(t, after.Dirty[id])
	assert.False(t, after.SigChanged[id])
	assert.False(t, after.Added[id])
	assert.Equal(t, before.Fragments[id].L3, after.Fragments[id].L3)
}

func TestIndexFileRepeatedTopLevelStmtsDisambiguate(t *testing.T) {
	res := mustIndex(t, "1 + 1\n2 + 2\n", nil, nil)
	require.Len(t, res.Fragments, 2)

	seen := map[int]bool{}
	for id := range res.Fragments {
		assert.Equal(t, TopLevelStmt, id.Kind)
		assert.Equal(t, "<top-expr>", id.Name)
		seen[id.Disambiguator] = true
	}
	assert.True(t, seen[0] && seen[1], "repeated top-level statements get distinct disambiguators")
}

func TestScanDepsResolvesCallTargetAsDependency(t *testing.T) {
	callee := FragId{Name: "helper", Kind: Function}
	resolve := func(name string) (FragId, bool) {
		if name == "helper" {
			return callee, true
		}
		return FragId{}, false
	}
	res := mustIndex(t, `fn caller() int { return helper() }`, nil, resolve)

	var id FragId
	for k := range res.Fragments {
		id = k
	}
	assert.Contains(t, res.Fragments[id].Deps, callee)
}
