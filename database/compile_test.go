package database

import (
	"testing"

	"github.com/auto-stack/autolang/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFragID(t *testing.T, db *Database, name string, kind fragment.Kind) fragment.FragId {
	t.Helper()
	for id := range db.Fragments {
		if id.Name == name && id.Kind == kind {
			return id
		}
	}
	require.Failf(t, "fragment not found", "%s (%s)", name, kind)
	return fragment.FragId{}
}

func TestCompileSourceFirstCompileAddsFragmentsAllDirty(t *testing.T) {
	db := New()
	res := db.CompileSource("a.auto", `fn helper() int { return 1 }
fn caller() int { return helper() }`, 20)

	require.Empty(t, res.ParseErrors.Errors)
	require.Len(t, res.Fragments, 2)
	for id := range res.Fragments {
		assert.True(t, db.DirtySet[id])
	}

	caller := lookupFragID(t, db, "caller", fragment.Function)
	helper := lookupFragID(t, db, "helper", fragment.Function)
	assert.Contains(t, db.DepGraph.Forward[caller], helper)
	assert.Contains(t, db.DepGraph.Reverse[helper], caller)
}

func TestCompileSourceBodyOnlyEditDoesNotInvalidateDependents(t *testing.T) {
	db := New()
	db.CompileSource("a.auto", `fn helper() int { return 1 }
fn caller() int { return helper() }`, 20)

	caller := lookupFragID(t, db, "caller", fragment.Function)
	delete(db.DirtySet, caller) // simulate caller already recompiled and clean

	db.CompileSource("a.auto", `fn helper() int { return 2 }
fn caller() int { return helper() }`, 20)

	helper := lookupFragID(t, db, "helper", fragment.Function)
	assert.True(t, db.DirtySet[helper], "helper's own body changed")
	assert.False(t, db.DirtySet[caller], "熔断 a body-only change must not dirty dependents")
}

func TestCompileSourceSignatureEditInvalidatesDependents(t *testing.T) {
	db := New()
	db.CompileSource("a.auto", `fn helper() int { return 1 }
fn caller() int { return helper() }`, 20)

	caller := lookupFragID(t, db, "caller", fragment.Function)
	delete(db.DirtySet, caller)

	db.CompileSource("a.auto", `fn helper(x int) int { return x }
fn caller() int { return helper() }`, 20)

	assert.True(t, db.DirtySet[caller], "helper's signature changed, so caller must be re-marked dirty")
}

func TestCompileSourceRemovingAFragmentPropagatesToDependents(t *testing.T) {
	db := New()
	db.CompileSource("a.auto", `fn helper() int { return 1 }`, 20)
	db.CompileSource("other.auto", `fn caller() int { return helper() }`, 20)

	caller := lookupFragID(t, db, "caller", fragment.Function)
	delete(db.DirtySet, caller)

	// Removing helper's defining file must dirty caller even though
	// caller's own text in other.auto never changed.
	db.CompileSource("a.auto", ``, 20)

	assert.True(t, db.DirtySet[caller], "caller depended on helper, which was just removed")
	for id := range db.Fragments {
		assert.NotEqual(t, "helper", id.Name, "helper was removed from the file and must no longer be registered")
	}
}

func TestCompileSourceIdempotentOnUnchangedText(t *testing.T) {
	db := New()
	src := `fn f() int { return 1 }`
	db.CompileSource("a.auto", src, 20)
	for id := range db.Fragments {
		delete(db.DirtySet, id)
	}

	db.CompileSource("a.auto", src, 20)
	for id := range db.Fragments {
		assert.False(t, db.DirtySet[id], "recompiling identical text introduces no new dirtiness")
	}
}

func TestLabelAndPatchSince(t *testing.T) {
	db := New()
	db.CompileSource("a.auto", `fn f() int { return 1 }`, 20)
	db.Label("checkpoint-1")

	db.CompileSource("a.auto", `fn f() int { return 2 }
fn g() int { return 3 }`, 20)

	patch, ok := db.PatchSince("checkpoint-1")
	require.True(t, ok)
	assert.Len(t, patch.Added, 1)
	assert.Len(t, patch.Updated, 1)
	assert.Empty(t, patch.Removed)
}

func TestCompileSourceParseErrorStopsShortOfFragments(t *testing.T) {
	db := New()
	res := db.CompileSource("a.auto", `fn ( { `, 20)
	assert.NotEmpty(t, res.ParseErrors.Errors)
}

func TestCompileSourceWarnsOnRedundantPreludeUse(t *testing.T) {
	db := New()
	res := db.CompileSource("a.auto", "use auto.may: May\nfn f() ?int { 42 }", 20)
	require.Empty(t, res.ParseErrors.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "auto_warning_W0002", res.Warnings[0].Code)
}

func TestCompileSourceDoesNotWarnOnUseOfOtherModule(t *testing.T) {
	db := New()
	res := db.CompileSource("a.auto", "use auto.io: IO\nfn f() int { 1 }", 20)
	require.Empty(t, res.ParseErrors.Errors)
	assert.Empty(t, res.Warnings)
}
