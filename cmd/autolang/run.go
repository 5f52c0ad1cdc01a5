package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/auto-stack/autolang/database"
	"github.com/auto-stack/autolang/eval"
	"github.com/auto-stack/autolang/fragment"
	"github.com/auto-stack/autolang/runtime"
	"github.com/auto-stack/autolang/session"
	"github.com/pkg/errors"
)

// runScript implements script mode: the first positional argument is a
// filename, compiled and evaluated in a fresh session (spec §6 "Script
// mode. First positional argument is a filename; contents are run with
// run").
func runScript(ctx context.Context, path string, errorLimit int, out io.Writer) int {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, errors.Wrapf(err, "reading %s", path))
		return exitIOError
	}

	s := session.NewSession(errorLimit)
	res := s.CompileSource(ctx, path, string(text))
	if len(res.ParseErrors.Errors) > 0 {
		for _, e := range res.ParseErrors.Errors {
			fmt.Fprintf(out, "error[%s]: %s\n", path, e.Message)
		}
		return exitCompileError
	}

	typeErrs, warnings := typecheck(s, res.Fragments)
	warnings = append(res.Warnings, warnings...)
	for _, w := range warnings {
		fmt.Fprintf(out, "warning[%s]: %s\n", w.Code, w.Message)
	}
	if len(typeErrs) > 0 {
		for _, e := range typeErrs {
			fmt.Fprintf(out, "error[%s]: %s\n", e.Code, e.Message)
		}
		return exitCompileError
	}

	eng := runtime.NewExecutionEngine()
	ev := eval.NewEvaler(s.Snapshot(), eng)
	for _, id := range topLevelInOrder(s.Database(), res.Fragments) {
		if _, err := ev.EvalFragment(id); err != nil {
			fmt.Fprintln(out, errors.Wrap(err, "runtime error"))
			return exitEvalError
		}
	}
	return exitSuccess
}

// topLevelInOrder returns ids's TopLevelStmt fragments in source order,
// mirroring session.Run's own ordering helper (kept separate since it
// is unexported there): a Go map's iteration order is nondeterministic
// and the spec requires top-to-bottom statement evaluation (spec §5).
func topLevelInOrder(db *database.Database, ids map[fragment.FragId]struct{}) []fragment.FragId {
	type item struct {
		id    fragment.FragId
		start int
	}
	var items []item
	for id := range ids {
		if id.Kind != fragment.TopLevelStmt {
			continue
		}
		if frag, ok := db.Fragments[id]; ok {
			items = append(items, item{id, frag.Span.Start})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].start < items[j].start })
	out := make([]fragment.FragId, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}
