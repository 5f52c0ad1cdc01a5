// Package session implements the spec's session layer: CompileSession
// (compile-time state plus a lazily-created QueryEngine) and
// ReplSession (adds an ExecutionEngine and Evaler for interactive use).
package session

import (
	"context"
	"sync"

	"github.com/auto-stack/autolang/autolog"
	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/query"
)

const defaultCacheCapacity = 4096

// CompileSession owns one Database and lazily creates the QueryEngine
// that caches computations over it (spec §4.E). It is the unit of
// compile-time state a one-shot run or a ReplSession operates against.
// Grounded on gapis/database/database.go's context-attached singleton
// accessors, generalised into an owned struct, and gapil/resolver's
// top-level Resolve entry point as the per-source compile driver.
type CompileSession struct {
	mu         sync.Mutex
	db         *database.Database
	queries    *query.QueryEngine
	errorLimit int
}

// NewSession returns an empty CompileSession. errorLimit bounds the
// number of parse diagnostics reported per compile (0 uses the
// parser's own default of 20).
func NewSession(errorLimit int) *CompileSession {
	return &CompileSession{db: database.New(), errorLimit: errorLimit}
}

// CompileSource updates path's text, reruns indexing, and returns the
// fragments contributed by this source (spec §4.E
// "compile_source(text, path) -> set<FragId>"). ctx carries the
// autolog.Logger compile diagnostics are written through; a nil ctx is
// treated like context.Background().
func (s *CompileSession) CompileSource(ctx context.Context, path, text string) database.CompileResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	autolog.From(ctx).Debug("compiling %s (%d bytes)", path, len(text))
	res := s.db.CompileSource(path, text, s.errorLimit)
	if len(res.ParseErrors.Errors) > 0 {
		autolog.From(ctx).Warning("%s: %d parse error(s)", path, len(res.ParseErrors.Errors))
	}
	return res
}

// Database returns the session's live Database. Callers that want a
// stable read-only view should call Snapshot instead.
func (s *CompileSession) Database() *database.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Snapshot returns a cheap, independently-stable read-only clone of
// the Database (spec §4.E "snapshot() -> Database snapshot").
func (s *CompileSession) Snapshot() *database.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Snapshot()
}

// Queries lazily creates and returns the session's QueryEngine.
func (s *CompileSession) Queries() *query.QueryEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queries == nil {
		s.queries = query.NewEngine(defaultCacheCapacity)
	}
	return s.queries
}

// Label records a named checkpoint of the current fragment table
// (spec §4.E "label(name)").
func (s *CompileSession) Label(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db.Label(name)
}

// PatchSince returns the patch moving the fragment table from the
// named checkpoint to its current state (spec §4.E "patch_since(label)
// -> Patch").
func (s *CompileSession) PatchSince(name string) (*fragment.Patch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.PatchSince(name)
}

// Stats reports the session's compile-time occupancy (spec §4.E
// "stats() -> {files, fragments, dirty, cache-entries}").
type Stats struct {
	Files        int
	Fragments    int
	Dirty        int
	CacheEntries int
}

func (s *CompileSession) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Files:     len(s.db.Files.Snapshot()),
		Fragments: len(s.db.Fragments),
		Dirty:     len(s.db.DirtySet),
	}
	if s.queries != nil {
		st.CacheEntries = s.queries.Stats().Entries
	}
	return st
}
