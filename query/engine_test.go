package query

import (
	"testing"

	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapWith(t *testing.T, src string) (*database.Database, fragment.FragId) {
	t.Helper()
	db := database.New()
	res := db.CompileSource("t.auto", src, 20)
	require.Empty(t, res.ParseErrors.Errors)
	require.Len(t, res.Fragments, 1)
	var id fragment.FragId
	for k := range res.Fragments {
		id = k
	}
	return db.Snapshot(), id
}

func TestQueryCachesSecondCallWithoutRecomputing(t *testing.T) {
	snap, id := snapWith(t, `fn f(a int) int { return a }`)
	qe := NewEngine(0)

	calls := 0
	compute := func(*database.Database) (interface{}, error) {
		calls++
		return "result", nil
	}

	v1, err := qe.Query(snap, KindInferFragment, id, "", compute)
	require.NoError(t, err)
	v2, err := qe.Query(snap, KindInferFragment, id, "", compute)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, calls, "second Query against the same unchanged snapshot must hit the cache")
	assert.Equal(t, uint64(1), qe.Stats().Hits)
}

func TestQueryRecomputesAfterSignatureChange(t *testing.T) {
	db := database.New()
	db.CompileSource("t.auto", `fn f(a int) int { return a }`, 20)
	qe := NewEngine(0)

	var id fragment.FragId
	for k := range db.Fragments {
		id = k
	}

	calls := 0
	compute := func(*database.Database) (interface{}, error) {
		calls++
		return calls, nil
	}

	_, _ = qe.Query(db.Snapshot(), KindInferFragment, id, "", compute)

	db.CompileSource("t.auto", `fn f(a int, b int) int { return a }`, 20)
	for k := range db.Fragments {
		id = k
	}

	_, _ = qe.Query(db.Snapshot(), KindInferFragment, id, "", compute)
	assert.Equal(t, 2, calls, "a changed signature must invalidate the cached entry")
}

func TestQuerySurvivesUnrelatedDependencyBodyEdit(t *testing.T) {
	db := database.New()
	db.CompileSource("t.auto", `fn helper() int { return 1 }
fn caller() int { return helper() }`, 20)
	qe := NewEngine(0)

	var caller fragment.FragId
	for id := range db.Fragments {
		if id.Name == "caller" {
			caller = id
		}
	}

	calls := 0
	compute := func(*database.Database) (interface{}, error) {
		calls++
		return calls, nil
	}
	_, _ = qe.Query(db.Snapshot(), KindInferFragment, caller, "", compute)

	db.CompileSource("t.auto", `fn helper() int { return 2 }
fn caller() int { return helper() }`, 20)
	for id := range db.Fragments {
		if id.Name == "caller" {
			caller = id
		}
	}

	_, _ = qe.Query(db.Snapshot(), KindInferFragment, caller, "", compute)
	assert.Equal(t, 1, calls, "熔断 helper's body-only edit must not invalidate caller's cached query")
}

func TestQueryDetectsReentrantCycle(t *testing.T) {
	snap, id := snapWith(t, `fn f(a int) int { return a }`)
	qe := NewEngine(0)

	var compute Func
	compute = func(s *database.Database) (interface{}, error) {
		return qe.Query(s, KindInferFragment, id, "", compute)
	}

	_, err := qe.Query(snap, KindInferFragment, id, "", compute)
	require.Error(t, err)
	var cycleErr *CycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestQueryDistinguishesExtraDiscriminator(t *testing.T) {
	snap, id := snapWith(t, `fn f(a int) int { return a }`)
	qe := NewEngine(0)

	compute := func(*database.Database) (interface{}, error) { return "v", nil }
	_, _ = qe.Query(snap, KindGetCompletions, id, "prefix-a", compute)
	_, _ = qe.Query(snap, KindGetCompletions, id, "prefix-b", compute)

	assert.Equal(t, 2, qe.Stats().Entries)
}

func TestInvalidateDropsAllEntriesForFragment(t *testing.T) {
	snap, id := snapWith(t, `fn f(a int) int { return a }`)
	qe := NewEngine(0)
	compute := func(*database.Database) (interface{}, error) { return "v", nil }

	_, _ = qe.Query(snap, KindInferFragment, id, "", compute)
	_, _ = qe.Query(snap, KindGetCompletions, id, "x", compute)
	assert.Equal(t, 2, qe.Stats().Entries)

	qe.Invalidate(id)
	assert.Equal(t, 0, qe.Stats().Entries)
}

func TestLRUEvictsOldestOverCapacity(t *testing.T) {
	db := database.New()
	db.CompileSource("t.auto", `fn a() int { return 1 }
fn b() int { return 2 }
fn c() int { return 3 }`, 20)
	qe := NewEngine(2)
	compute := func(*database.Database) (interface{}, error) { return "v", nil }

	var ids []fragment.FragId
	for id := range db.Fragments {
		ids = append(ids, id)
	}
	require.Len(t, ids, 3)

	snap := db.Snapshot()
	for _, id := range ids {
		_, _ = qe.Query(snap, KindInferFragment, id, "", compute)
	}

	st := qe.Stats()
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, uint64(1), st.Evictions)
}
