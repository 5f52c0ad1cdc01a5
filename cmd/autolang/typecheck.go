package main

import (
	"github.com/auto-stack/autolang/diag"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/session"
)

// typecheck runs inference over every fragment the most recent compile
// contributed and returns the accumulated diagnostics. It goes through
// s.Queries()'s InferFragment cache (spec §4.D), so a recompile that
// only touches one fragment's body leaves every other fragment's
// inference result cached rather than recomputed (spec §8 "QueryEngine
// cache hit" scenarios). Errors are accumulated rather than thrown
// (spec §7 "the inference pass always completes"), so this always
// visits every fragment regardless of earlier failures.
func typecheck(s *session.CompileSession, ids map[fragment.FragId]struct{}) (errs, warnings []*diag.Diagnostic) {
	return session.CheckFragments(s.Queries(), s.Snapshot(), ids)
}
