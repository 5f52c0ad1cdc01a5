package session

import (
	"github.com/auto-stack/autolang/ast"
	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/diag"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/infer"
	"github.com/auto-stack/autolang/query"
)

// CheckFragment runs id's inference through qe's 熔断-aware cache,
// keyed as InferFragment(id) (spec §4.D). A body-only edit to one of
// id's dependencies leaves id's own L3 and its dependencies' L2
// untouched, so the fingerprint captured on a prior run still
// validates and qe.Query returns the cached *infer.Context without
// calling InferFunction/InferExpr again — the cache hit spec §8
// Scenarios 1-3 require for unaffected fragments.
func CheckFragment(qe *query.QueryEngine, snap *database.Database, id fragment.FragId) (*infer.Context, bool) {
	frag, ok := snap.Fragments[id]
	if !ok {
		return nil, false
	}

	switch body := frag.Body.(type) {
	case *ast.Function:
		result, err := qe.Query(snap, query.KindInferFragment, id, "", func(s *database.Database) (interface{}, error) {
			ctx, _ := infer.InferFunction(s, body)
			return ctx, nil
		})
		if err != nil {
			return nil, false
		}
		return result.(*infer.Context), true

	case *ast.TopLevelStmt:
		result, err := qe.Query(snap, query.KindInferFragment, id, "", func(s *database.Database) (interface{}, error) {
			ctx := infer.NewContext(s)
			ctx.InferExpr(body.Value)
			return ctx, nil
		})
		if err != nil {
			return nil, false
		}
		return result.(*infer.Context), true

	default:
		return nil, false
	}
}

// CheckFragments runs CheckFragment over every id in ids and
// accumulates their diagnostics (spec §7 "the inference pass always
// completes" — a cycle or compute error on one fragment never stops
// the rest from being checked).
func CheckFragments(qe *query.QueryEngine, snap *database.Database, ids map[fragment.FragId]struct{}) (errs, warnings []*diag.Diagnostic) {
	for id := range ids {
		ctx, ok := CheckFragment(qe, snap, id)
		if !ok {
			continue
		}
		errs = append(errs, ctx.Errors...)
		warnings = append(warnings, ctx.Warnings...)
	}
	return errs, warnings
}
